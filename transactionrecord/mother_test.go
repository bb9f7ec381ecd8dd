// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"github.com/bitmark-inc/algotransact/address"
	"github.com/bitmark-inc/algotransact/fixtures"
	"github.com/bitmark-inc/algotransact/transactionrecord"
)

// seed of the key that signed the recorded envelopes
var signingSeed = []byte{
	0x02, 0xcd, 0x67, 0x21, 0x43, 0x0e, 0x52, 0xc4,
	0x73, 0xc4, 0xce, 0xfe, 0x32, 0x6e, 0x3f, 0xb6,
	0x95, 0xe5, 0xb8, 0xd8, 0x5d, 0x0b, 0x0d, 0x63,
	0x45, 0xd5, 0xda, 0xa5, 0x86, 0x76, 0x2f, 0x2c,
}

var exampleGenesisHash = fixtures.MustDigest("3r2+nRwL99aTROTiOtPEeUQarv2fATkmNliHqfGxNJA=")

func testnetHeader(sender address.Address, firstValid uint64, lastValid uint64) transactionrecord.Transaction {
	return transactionrecord.Transaction{
		Sender:      sender,
		Fee:         1000,
		FirstValid:  firstValid,
		LastValid:   lastValid,
		GenesisHash: fixtures.TestnetGenesisHash,
		GenesisID:   fixtures.TestnetGenesisID,
	}
}

func mainnetHeader(sender address.Address, firstValid uint64, lastValid uint64) transactionrecord.Transaction {
	return transactionrecord.Transaction{
		Sender:      sender,
		Fee:         1000,
		FirstValid:  firstValid,
		LastValid:   lastValid,
		GenesisHash: fixtures.MainnetGenesisHash,
		GenesisID:   fixtures.MainnetGenesisID,
	}
}

func exampleHeader() transactionrecord.Transaction {
	return transactionrecord.Transaction{
		Sender:      fixtures.MustAddress("ALGOC4J2BCZ33TCKSSAMV5GAXQBMV3HDCHDBSPRBZRNSR7BM2FFDZRFGXA"),
		Fee:         1000,
		FirstValid:  1,
		LastValid:   999,
		GenesisHash: exampleGenesisHash,
		GenesisID:   "example",
	}
}

func simplePayment() transactionrecord.Transaction {
	tx := testnetHeader(fixtures.Sender, 50659540, 50660540)
	tx.Payload = transactionrecord.Payment{
		Amount:   101000,
		Receiver: fixtures.Receiver,
	}
	return tx
}

func simpleAssetTransfer() transactionrecord.Transaction {
	tx := testnetHeader(fixtures.Neil, 51183672, 51183872)
	tx.Payload = transactionrecord.AssetTransfer{
		AssetID:  107686045,
		Amount:   1000,
		Receiver: fixtures.Sender,
	}
	return tx
}

// payments from neil to itself as recorded on testnet
func groupPayment(note string, amount uint64) transactionrecord.Transaction {
	tx := testnetHeader(fixtures.Neil, 51532821, 51533021)
	tx.Note = []byte(note)
	tx.Payload = transactionrecord.Payment{
		Amount:   amount,
		Receiver: fixtures.Neil,
	}
	return tx
}

func keyPart32(s string) [32]byte {
	var k [32]byte
	copy(k[:], fixtures.MustBase64(s))
	return k
}

// every recorded transaction by its name in testdata/vectors.json
func recordedTransactions() map[string]transactionrecord.Transaction {
	txs := make(map[string]transactionrecord.Transaction)

	txs["simple_payment"] = simplePayment()

	tx := simplePayment()
	tx.Note = fixtures.MustBase64("MGFhNTBkMjctYjhmNy00ZDc3LWExZmItNTUxZmQ1NWRmMmJj")
	txs["payment_with_note"] = tx

	tx = mainnetHeader(fixtures.MustAddress("P5IFX3UBXZJPDSLPT4TB4RYACD2XJ74XSNKCF7KMW3P7ZGN4RRE3C2T5WM"), 51169629, 51170629)
	tx.Group = fixtures.MustDigest("u8X2MQIAMHmcBUEsoE0ivmGoYxSWU91VbNN8Z+Zb+sk=")
	tx.Payload = transactionrecord.Payment{
		Amount:   53100000,
		Receiver: fixtures.MustAddress("G6TOB3V7INUMZ5BYFOH52RNMMCZCX3ZCX7JHF3BGIG46PFFZNRPHDCIDIM"),
	}
	txs["observed_payment"] = tx

	txs["conformance_payment"] = conformancePayment()

	txs["simple_asset_transfer"] = simpleAssetTransfer()

	tx = testnetHeader(fixtures.Neil, 51183672, 51183872)
	tx.Payload = transactionrecord.AssetTransfer{
		AssetID:  107686045,
		Receiver: fixtures.Neil,
	}
	txs["opt_in_asset_transfer"] = tx

	creator := fixtures.MustAddress("KPVZ66IFE7KHQ6623XHTPVS3IL7BXBE3HXQG35J65CVDA54VLRPP4SVOU4")
	tx = mainnetHeader(creator, 26594258, 26595258)
	tx.Note = fixtures.MustBase64("eyJuYW1lIjoiRnJhY2N0YWwgVG9rZW4iLCJ1bml0TmFtZSI6IkZSQUNDIiwiZXh0ZXJuYWxfdXJsIjoid3d3LmZyYWNjdGFsbW9uc3RlcnNuZnQuY29tIiwiaW1hZ2VfbWltZXR5cGUiOiJpbWFnZS9wbmciLCJkZXNjcmlwdGlvbiI6IkZyYWNjdGFsIFRva2VucyBhcmUgaW4tZ2FtZSBjdXJyZW5jeSBmb3IgdGhlIEZyYWNjdGFsIE1vbnN0ZXJzIGdhbWUhIn0=")
	tx.Payload = transactionrecord.AssetConfig{
		Params: &transactionrecord.AssetParams{
			Total:     10000000000,
			UnitName:  "FRACC",
			AssetName: "Fracctal Token",
			URL:       "template-ipfs://{ipfscid:0:dag-pb:reserve:sha2-256}",
			Manager:   creator,
			Reserve:   fixtures.MustAddress("YQTVEPKB4O5F26H76L5I7BA6VGCMRC6P2QSWRKG4KVJLJ62MVYTDJPM6KE"),
			Freeze:    creator,
			Clawback:  creator,
		},
	}
	txs["asset_create"] = tx

	tx = mainnetHeader(fixtures.MustAddress("MBX2M6J44LQ22L3FROYRBKUAG4FWENPSLPTI7EBR4ECQ2APDMI6XTENHWQ"), 6354623, 6355623)
	tx.GenesisID = ""
	tx.Note = fixtures.MustBase64("fSaN7lZKDoU=")
	tx.Payload = transactionrecord.AssetConfig{AssetID: 917559}
	txs["asset_destroy"] = tx

	txs["asset_freeze"] = assetFreeze()
	txs["asset_unfreeze"] = assetUnfreeze()

	caller := fixtures.MustAddress("KVAGZI3WJI36TTTKJUI36ECGP3NHGR5VBJNIXG3DROHPGH2XFC36D4HENE")
	tx = testnetHeader(caller, 21038300, 21039300)
	tx.Fee = 5000
	tx.Note = fixtures.MustBase64("AAAAAAAPQkA=")
	tx.Group = fixtures.MustDigest("ktxBY/2UFfqvhwKKxwihS9YhfG+of3hz2I3ErgNZZSo=")
	tx.Payload = transactionrecord.AppCall{
		AppID: 84366825,
		Args: [][]byte{
			fixtures.MustBase64("bWludA=="),
			fixtures.MustBase64("AAAAAAAPQkA="),
			fixtures.MustBase64("c2VjdXJpdGl6ZS5hbGdv"),
			fixtures.MustBase64("dGVtcGxhdGUtaXBmczovL3tpcGZzY2lkOjE6ZGFnLXBiOnJlc2VydmU6c2hhMi0yNTZ9L25mZC5qc29u"),
		},
		AccountReferences: []address.Address{caller, caller},
		AssetReferences:   []uint64{84366776},
	}
	txs["application_call"] = tx

	deleter := fixtures.MustAddress("H3OQEQIIC35RZTJNU5A75LT4PCTUCF3VKVEQTSXAJMUGNTRUKEKI4QSRW4")
	other := fixtures.MustAddress("MDIVKI64M2HEKCWKH7SOTUXEEW6KNOYSAOBTDTS32KUQOGUT75D43MSP5M")
	tx = mainnetHeader(deleter, 39723798, 39724798)
	tx.Payload = transactionrecord.AppCall{
		AppID:             1898586902,
		OnComplete:        transactionrecord.DeleteApplication,
		AccountReferences: []address.Address{other, deleter, other},
		AssetReferences:   []uint64{850924184},
	}
	txs["application_delete"] = tx

	tx = testnetHeader(fixtures.MustAddress("RAJ6J5E32CAU47LTXYQESPEGNTIE4AE652XZMU4V2AYBNTRVDPOF5DXOQM"), 21038233, 21039233)
	tx.Group = fixtures.MustDigest("3T4cJx8PgfSOdwtONtjXVpkUjd46fNik93wUUZMszxY=")
	tx.Payload = transactionrecord.AppCall{
		AppID:             84366825,
		OnComplete:        transactionrecord.OptIn,
		Args:              [][]byte{fixtures.MustBase64("YXNzaWdu")},
		AccountReferences: []address.Address{caller},
		AssetReferences:   []uint64{84366776},
	}
	txs["application_opt_in"] = tx

	tx = exampleHeader()
	tx.Payload = transactionrecord.AppCall{
		AppID:      12345,
		OnComplete: transactionrecord.CloseOut,
	}
	txs["application_close_out"] = tx

	tx = exampleHeader()
	tx.Payload = transactionrecord.AppCall{
		AppID:         12345,
		AppReferences: []uint64{111, 222},
		BoxReferences: []transactionrecord.BoxReference{
			{AppID: 0, Name: []byte("a")},
			{AppID: 222, Name: []byte("bx")},
			{AppID: 0, Name: []byte{}},
		},
	}
	txs["application_box_references"] = tx

	tx = testnetHeader(fixtures.MustAddress("PKASUHJJ7HALD6BXBIOLQTRFHAP6HF2TAYQ734E325FGDRB66EE6MYQGTM"), 53287880, 53288880)
	tx.GenesisID = ""
	tx.Fee = 2000000
	kr := transactionrecord.KeyRegistration{
		VoteKey:         keyPart32("jXzwxM2vUp0/wdazgu6be7BesDn9NKCDaEfvwKMmhTE="),
		SelectionKey:    keyPart32("pi8u2HhXe6qB5IIMTSn2vKiWkDhMCOk1G2G3oyaeSlA="),
		VoteFirst:       53287679,
		VoteLast:        56287679,
		VoteKeyDilution: 1733,
	}
	copy(kr.StateProofKey[:], fixtures.MustBase64("+h0VzqDJIOEaYTaCGDZMV0jZKQ4ShsVrhyyObOu+s3yF1+oLp2b4l/WGDFp1+kObVVyoNcCYyuE15OsyAhYZxg=="))
	tx.Payload = kr
	txs["online_key_registration"] = tx

	tx = testnetHeader(fixtures.MustAddress("W5LKXE4BG7OND7KPGSXPDOOYQDITPNS7NSDU7672TO6I4RDNSEFWXRPISQ"), 52556882, 52557882)
	tx.GenesisID = ""
	tx.Payload = transactionrecord.KeyRegistration{}
	txs["offline_key_registration"] = tx

	tx = testnetHeader(fixtures.MustAddress("4UMX2FKZ636VEL74WR66Z5PSRVDC2QAH6GRPP2DTVSBPPADBDY2JB3PN2U"), 3321800, 3322800)
	tx.GenesisID = ""
	tx.Payload = transactionrecord.KeyRegistration{NonParticipation: true}
	txs["non_participation_key_registration"] = tx

	return txs
}

// sender A pays receiver B 1337 in rounds 1337 to 1347
func conformancePayment() transactionrecord.Transaction {
	tx := testnetHeader(fixtures.Sender, 1337, 1347)
	tx.Payload = transactionrecord.Payment{
		Amount:   1337,
		Receiver: fixtures.Receiver,
	}
	return tx
}

func assetFreeze() transactionrecord.Transaction {
	tx := mainnetHeader(fixtures.MustAddress("E4A6FVIHXSZ3F7QXRCOTYDDILVQYEBFH56HYDIIYX4SVXS2QX5GUTBVZHY"), 37463562, 37464562)
	tx.Note = fixtures.MustBase64("TkZUIGZyZWV6ZWQgYnkgbG9mdHkuYWk=")
	tx.Group = fixtures.MustDigest("xERjxVTlNb8jeHa16qmpxDMh4+dcDCokO69QnNESbFk=")
	tx.Payload = transactionrecord.AssetFreeze{
		AssetID:      1707148495,
		FreezeTarget: fixtures.MustAddress("ZJU3X2B2QN3BUBIJ64JZ565V363ANGBUDOLXAJHDXGIIMYK6WV3NSNCBQQ"),
		Frozen:       true,
	}
	return tx
}

func assetUnfreeze() transactionrecord.Transaction {
	tx := testnetHeader(fixtures.MustAddress("WLH5LELVSEVQL45LBRQYCLJAX6KQPGWUY5WHJXVRV2NPYZUBQAFPH22Q7A"), 3277583, 3278583)
	tx.GenesisID = ""
	tx.Note = fixtures.MustBase64("th4JDxFROQw=")
	tx.Payload = transactionrecord.AssetFreeze{
		AssetID:      185,
		FreezeTarget: fixtures.MustAddress("ZYQX7BZ6LGTD7UCS7J5RVEAKHUJPK3FNJFZV2GPUYS2TFIADVFHDBKTN7I"),
		Frozen:       false,
	}
	return tx
}
