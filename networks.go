// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

// bitcoinLike returns a UTXO network using the xprv/xpub key IDs.
func bitcoinLike(name, symbol string, coin uint32, pkh, sh, wif byte) Network {
	return Network{
		Name:             name,
		Symbol:           symbol,
		CoinType:         coin,
		PubKeyHashAddrID: pkh,
		ScriptHashAddrID: sh,
		PrivateKeyID:     wif,
		HDKeyIDs:         bitcoinHDKeyIDs,
	}
}

// ethereumLike returns an account-based network. Extended keys use the
// bitcoin version bytes.
func ethereumLike(name, symbol string, coin uint32) Network {
	n := bitcoinLike(name, symbol, coin, 0x00, 0x05, 0x80)
	n.AccountBased = true
	return n
}

func withSegwit(n Network, hrp string) Network {
	n.Segwit = true
	n.Bech32HRP = hrp
	return n
}

func withHDKeyIDs(n Network, ids HDKeyIDs) Network {
	n.HDKeyIDs = ids
	return n
}

func withSegwitHDKeyIDs(n Network, nested, native HDKeyIDs) Network {
	n.SegwitHDKeyIDs = map[SegwitMode]HDKeyIDs{
		SegwitP2WPKHInP2SH: nested,
		SegwitP2WPKH:       native,
	}
	return n
}

func withTransform(n Network, t Transform) Network {
	n.Transform = t
	return n
}

var defaultRegistry = NewRegistry(
	bitcoinLike("AXE - Axe", "AXE", 0, 0x37, 0x10, 0xcc),
	bitcoinLike("BCH - Bitcoin Cash", "BCH", 145, 0x00, 0x05, 0x80),
	withSegwitHDKeyIDs(withSegwit(bitcoinLike("BTC - Bitcoin", "BTC", 0, 0x00, 0x05, 0x80), "bc"),
		HDKeyIDs{Private: [4]byte{0x04, 0x9d, 0x78, 0x78}, Public: [4]byte{0x04, 0x9d, 0x7c, 0xb2}}, // yprv/ypub
		HDKeyIDs{Private: [4]byte{0x04, 0xb2, 0x43, 0x0c}, Public: [4]byte{0x04, 0xb2, 0x47, 0x46}}, // zprv/zpub
	),
	withSegwitHDKeyIDs(withHDKeyIDs(withSegwit(bitcoinLike("BTC - Bitcoin Testnet", "BTC", 1, 0x6f, 0xc4, 0xef), "tb"), testnetHDKeyIDs),
		HDKeyIDs{Private: [4]byte{0x04, 0x4a, 0x4e, 0x28}, Public: [4]byte{0x04, 0x4a, 0x52, 0x62}}, // uprv/upub
		HDKeyIDs{Private: [4]byte{0x04, 0x5f, 0x18, 0xbc}, Public: [4]byte{0x04, 0x5f, 0x1c, 0xf6}}, // vprv/vpub
	),
	withSegwit(bitcoinLike("BTG - Bitcoin Gold", "BTG", 0, 0x26, 0x17, 0x80), "btg"),
	bitcoinLike("CLAM - Clams", "CLAM", 23, 0x89, 0x0d, 0x85),
	bitcoinLike("CRW - Crown", "CRW", 72, 0x00, 0x1c, 0x80),
	bitcoinLike("DASH - Dash", "DASH", 5, 0x4c, 0x10, 0xcc),
	withHDKeyIDs(bitcoinLike("DASH - Dash Testnet", "DASH", 1, 0x8c, 0x13, 0xef), testnetHDKeyIDs),
	withHDKeyIDs(bitcoinLike("DOGE - Dogecoin", "DOGE", 3, 0x1e, 0x16, 0x9e),
		HDKeyIDs{Private: [4]byte{0x02, 0xfa, 0xc3, 0x98}, Public: [4]byte{0x02, 0xfa, 0xca, 0xfd}}, // dgpv/dgub
	),
	ethereumLike("ARA - Aura", "ARA", 312),
	ethereumLike("ETC - Ethereum Classic", "ETC", 61),
	ethereumLike("ETH - Ethereum", "ETH", 60),
	ethereumLike("EXP - Expanse", "EXP", 40),
	ethereumLike("UBQ - Ubiq", "UBQ", 108),
	ethereumLike("ELLA - Ellaism", "ELLA", 163),
	ethereumLike("PIRL - Pirl", "PIRL", 164),
	ethereumLike("MUSIC - Musicoin", "MUSIC", 184),
	bitcoinLike("FJC - Fujicoin", "FJC", 75, 0x24, 0x10, 0xa4),
	bitcoinLike("GAME - GameCredits", "GAME", 101, 0x26, 0x05, 0xa6),
	withHDKeyIDs(bitcoinLike("JBS - Jumbucks", "JBS", 26, 0x2b, 0x05, 0xab),
		HDKeyIDs{Private: [4]byte{0x03, 0x7a, 0x64, 0x60}, Public: [4]byte{0x03, 0x7a, 0x68, 0x9a}},
	),
	bitcoinLike("KMD - Komodo", "KMD", 141, 0x3c, 0x55, 0xbc),
	withSegwitHDKeyIDs(
		withHDKeyIDs(withSegwit(bitcoinLike("LTC - Litecoin", "LTC", 2, 0x30, 0x32, 0xb0), "ltc"),
			HDKeyIDs{Private: [4]byte{0x01, 0x9d, 0x9c, 0xfe}, Public: [4]byte{0x01, 0x9d, 0xa4, 0x62}}, // Ltpv/Ltub
		),
		HDKeyIDs{Private: [4]byte{0x01, 0xb2, 0x67, 0x92}, Public: [4]byte{0x01, 0xb2, 0x6e, 0xf6}}, // Mtpv/Mtub
		HDKeyIDs{Private: [4]byte{0x04, 0xb2, 0x43, 0x0c}, Public: [4]byte{0x04, 0xb2, 0x47, 0x46}},
	),
	bitcoinLike("MAZA - Maza", "MAZA", 13, 0x32, 0x09, 0xe0),
	withSegwit(bitcoinLike("MONA - Monacoin", "MONA", 22, 0x32, 0x37, 0xb0), "mona"),
	bitcoinLike("NMC - Namecoin", "NMC", 7, 0x34, 0x0d, 0x80),
	withTransform(bitcoinLike("NOSTR - Nostr", "NOSTR", 1237, 0x00, 0x05, 0x80), nostrTransform),
	bitcoinLike("ONX - Onixcoin", "ONX", 174, 0x4b, 0x05, 0x80),
	withHDKeyIDs(bitcoinLike("PIVX - PIVX", "PIVX", 119, 0x1e, 0x0d, 0xd4),
		HDKeyIDs{Private: [4]byte{0x02, 0x21, 0x31, 0x2b}, Public: [4]byte{0x02, 0x2d, 0x25, 0x33}},
	),
	withHDKeyIDs(bitcoinLike("PIVX - PIVX Testnet", "PIVX", 1, 0x8b, 0x13, 0xef),
		HDKeyIDs{Private: [4]byte{0x3a, 0x80, 0x58, 0x37}, Public: [4]byte{0x3a, 0x80, 0x61, 0xa0}},
	),
	bitcoinLike("PPC - Peercoin", "PPC", 6, 0x37, 0x75, 0xb7),
	withHDKeyIDs(bitcoinLike("SDC - ShadowCash", "SDC", 35, 0x3f, 0x7d, 0xbf),
		HDKeyIDs{Private: [4]byte{0xee, 0x80, 0x31, 0xe8}, Public: [4]byte{0xee, 0x80, 0x28, 0x6a}},
	),
	withHDKeyIDs(bitcoinLike("SDC - ShadowCash Testnet", "SDC", 1, 0x7f, 0xc4, 0xff),
		HDKeyIDs{Private: [4]byte{0x76, 0xc1, 0x07, 0x7a}, Public: [4]byte{0x76, 0xc0, 0xfd, 0xfb}},
	),
	withHDKeyIDs(bitcoinLike("SLM - Slimcoin", "SLM", 63, 0x3f, 0x7d, 0x46),
		HDKeyIDs{Private: [4]byte{0xef, 0x69, 0xea, 0x80}, Public: [4]byte{0xef, 0x6a, 0xdf, 0x10}},
	),
	withHDKeyIDs(bitcoinLike("SLM - Slimcoin Testnet", "SLM", 111, 0x6f, 0xc4, 0x57), testnetHDKeyIDs),
	bitcoinLike("USNBT - NuBits", "USNBT", 12, 0x19, 0x1a, 0x96),
	bitcoinLike("VIA - Viacoin", "VIA", 14, 0x47, 0x21, 0xc7),
	withHDKeyIDs(bitcoinLike("VIA - Viacoin Testnet", "VIA", 1, 0x7f, 0xc4, 0xff), testnetHDKeyIDs),
	bitcoinLike("XMY - Myriadcoin", "XMY", 90, 0x32, 0x09, 0xb2),
	withTransform(bitcoinLike("XRP - Ripple", "XRP", 144, 0x00, 0x05, 0x80), rippleTransform),
)

// DefaultRegistry returns the built-in network catalog.
func DefaultRegistry() *Registry { return defaultRegistry }

// Bitcoin returns the bitcoin mainnet entry of the default registry.
func Bitcoin() *Network {
	n, _ := defaultRegistry.Lookup("BTC - Bitcoin")
	return n
}
