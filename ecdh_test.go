package gls254

import (
	"encoding/hex"
	"testing"
)

// Reference ECDH vectors: private key, a valid peer key with the
// expected shared secret, and an invalid peer encoding with the
// expected (still deterministic) failure-path output.
var katECDH = []struct {
	sk, peerOK, sharedOK, peerBad, sharedBad string
}{
	{"efa5335c242f3fa3460af5edbb6d4ec580805d92fbdd6a74d823ca7eced1e913",
		"2d0df2615ae681cd2734bd905dad7017061b41a5559a28b60c9ec6e3ef23eb63",
		"527ab0a449272ba46cfcde5080277ae686de3d9380b3b48d8018cb7478f13022",
		"56dd447da86d00199a7aa9700ac6a04ce8bf17dcd63c4852a944cce18956d8df",
		"3264d7a70609782179f2f503e7d8a984b96d05e316a63f4b307ac6b71f071cd4"},
	{"eb7d1f13254c97ed868c48b437198443d52e89776dc36d55556f391283402e13",
		"4a98f953b3235351e9920e9a400ade7faa285d836e133e4f5d7583bf6b65c443",
		"dd4b60dc669d857307fdc0648cc7006ba916dbcdfef98d5e6ebfbc609e31b753",
		"784fdbfbfb8390d648db26ff5257ef297ad42e583cffa4097e066a554dcd68e1",
		"dc29ca8aa56d3c655b3bf54fa89488eb4b6ca8530f1eadfabf0e26f5120a46f9"},
	{"ab0ac3d0cda9e1c8ae4b3cd8c8a1035d1b481d49bf0db3f26231222e348ad110",
		"8b9259f63f63a281096e271510e87030bb0aa7ca39c1d60aaed2508316df8d4d",
		"822b628932f27a2cf111a7b1c969b8546122df0f9d66f33d658c64d1ab2d3ed0",
		"c1ab9fd79840127eae427a76fcecee00ae1f6c433b89da8afbe48f88f99bec18",
		"bb863d6b699612d0979d738e76805217b7464fe90105263b7680365a4de0220b"},
	{"72c32ea104b590c07cc19ccf0cb8c37ff0b050f995b68758753b548f4c2fd016",
		"cfcc2f4f284bfda1698f84f6abc0a051e83f885982d3f40da3b9f66f4fe6ce77",
		"0c70336df7bfbc428ef358636795d9770e94dfc1a7f386b4ef27dfe6edc76e8c",
		"015bc69f16e32d20718ec2f764fda2cfe4fa18f26ea953fe979d5a351b640f85",
		"7813d018d0de012b018024e5201227f4b0c493e1f2b374738ee2949894efc941"},
	{"f36d7dbd24414accc953191f6a223ea786a840f7c9dae46748848aa8c861760e",
		"4d73d669fa5499630a697cbc46d69c41e93f228fb7835fe32c0bc0d44536c24f",
		"0224aaf6009c89e9b3b96e70df9f0194071d5776470cbbc472953d309161f267",
		"917300222b564fc52e9c9de57df5ca87e2cbbd0ef8997946da0538eba3181b4f",
		"22c5125e020c4f4df71504b8b10e990af8e35aef02038a86f4a768111f2398d7"},
	{"db200046d4c6a9582518905450aeec6986dd29af62fa9ff72b1008e154545c00",
		"9aea9fa32969d4271f85474cc01ae24831ab62c4e55a2c5298732cda9d1b504a",
		"627e355cf8749fc778122d03f8a96dd0830404750fec3fa860f8bf8e98bade41",
		"53b112c4663a3e3518a795470dc89a315cff943406dabf5ee7029daa47016832",
		"f5555105d30629bbbe326ff746f59df940c8f90e5f7d23789e70e383354fdea0"},
	{"3849adc00abb42c53ad88d9321b8e7a87911ca33be530d0836073c8324ff4118",
		"4f09dddadd97fd62c5b042ee13b902696b8c5722c4635cf7f5a6602637ad5d63",
		"f3e4b28341d0be8c46f0ab0ca078560e36467195ef9e8a965436f0b12f146def",
		"623ac592961d2a91872138b1541dec4df67c4f90f47d2002e3b3ccaf511306e6",
		"eef21bae28cc67a99789678c3a5d2f7530c1944d496ed874e14f19826bb53829"},
	{"866140149b9ea7be1b15389b8872a5fff3e21547a43dd814fb223c164d77660a",
		"54f9982d97a33034e4e242413945bd7dee991b946ab5d64234a2f05ed674fe30",
		"4260598f7c3f908f74feb1860625a5fe1492410ea7c6e0cfbec226fd261773a1",
		"637cc59fac87980e66fe84ccb3c7ecb31694eeff78697155556a5dae6e88c0e7",
		"a991edf71253568dbec60100611bc8e53e7f16186472cafe14f5ee4dfe6ca37b"},
	{"b65cbbf772e0a85a7fac2ce1815df97185618d1d95a1d3eeddc60ef74f25c118",
		"7c515892f0d7f150a55c422274f21d7a2668f10ba17ee9cc03c39e2c894ea511",
		"ee1216e0f0d71caaa3a4168bfa3630a4499dffaf42cc4cde94b16b7b216b4a4e",
		"2412bb0dc99084fa88af4dc6f175bdfb3e48f1fd9737ae20d35ad7c7cf9ad7e6",
		"14e58ed179e5ff113e6c0fe6421f2d8ae872cb8ab3e02357fafc34d24799167a"},
	{"96725c787c7c6598c065d671c7ff9ea8d7e6c5d2bf43feaf6a9a1de3b4db2717",
		"c48d0a03c6f89cda616857eec962392a8473722c56d9fec6f08bbfd792b36c1c",
		"4b10091e1036ddb1f69a1299a7ff938a65ba095e087118e7900f11baaa729aad",
		"a5c172c8f415e4d680cd5684f2a629f260ac21694d4a812b5e9c63e93a117150",
		"516ea9297a13940f75cae38bca1c8e36b6c04ff7b53d3eda885d6408f555cede"},
	{"93a5bc7b61b87e2c73a96711524aebb61a08c0f86f07b76f8fcdead6081ce50c",
		"747f23e58a49cacac7ee2235e533f1676ae6b0fba3ecec66ec2fb1135008af68",
		"4b33a2006c0738463a08c2711a5777ffc1f4a0e0ceaf1c021459ed1334834852",
		"f09821ee19466e5d3fcd3e71b94084dd2a5e2ab2edf7ff5355983f2ea1c5fd07",
		"47a621d21f7e29885ba221aabde5f27a103f424782231d2f28a1c7653fc876f3"},
	{"7aba07d7b0eb9b91942c34d4b7d3109c169e16942bd8a10486bd91ae06385e05",
		"a5dce975971eb9a64003a540a6442f168919369ecdf04ae55b493a60c0b0b106",
		"8fa93f3e6a34d25fb9f0747c2684b54daebaa28b93d08da52f910c52f349609a",
		"aaa53549035e84af4b0dd9b9bf7ba124f619b7ee717755ce0e65fd08c8c32a96",
		"233836eb88365a170b5590b5b3fcde4d95afb9916a0dc34e8db685a80f933f02"},
	{"47aea7b0b75fd88ba8d25c2b5f2b5a5bfcb563fdde482ef17f9dc8908b649906",
		"0648d22d5fe5b96da305b049c2f6d076109fff5779555660f9bad7b1d9f4eb13",
		"2c6bcff0f28cb3238a6de3d21d256a714f327d65c834686dd013b200e4c74a3f",
		"0b24b3a777bd9281c29e37ebe395f33484b80355ee528539d752ba859d4ca94c",
		"4e4d9126698a5876a86f020dd297243a4464bb82dd350e47ce4f5f2ce3efbcfe"},
	{"e223af2985452c4873e22a8054c3db51d48841cd6888dcbcd953cdba4345c005",
		"270e8959897e231cccb7efa6bcd9341e5094e0f589d706b30d56ec6a7d6d494c",
		"008dd7dff93cd282b562fc7ee1f2e0f2c540b9a72c9d294bb261abd6bd1c92da",
		"7622faa5152516defc8df28b8c9c891bb3a20e06b6b255ed2e569e76521ee69f",
		"17777e61af7fd8c97c981b2f8731f7a153b4d98ae8185cbb68cfc15e1cb2117e"},
	{"333bfdb81bcf8fa7913263ed1d80533dfebc774c81c70dd285a69fbbf0508510",
		"c74aed16a68de4a045dcf9d111c87a041540c12cca1eab8748d4d4bd552ab701",
		"a495d9953f8c751191d9bccf8a25340d004b076a83f4d78c1e9a804518014a7e",
		"fcb135f686469182f8be6b771edcab95b9948abb16de7c972fce8edf5d709282",
		"4585b322626b6fca3767eccb347f1b47b06431a027d898bd668caed022fd43a3"},
	{"95cb2548d0205ba7141711002f1d331494c5a556800b31619e794139bd482605",
		"89fb4784ca2fd64308b8bfc5de0b9b3b28e3fd3bd809e92e3974508b762acb21",
		"54e6e8cd15c76989965526ed1f5c1f152395cf3291887b788f9e9e32bf02bc8d",
		"b86e4019bd672905f50e0f21050aaed117e65e475b9f465f449f91020dca90cd",
		"e222e92d4c16c0dc8cd662891e35a8c2b286cc9f581e46e29f55215192ef2cf0"},
	{"ade45d8a677bf6e66c4326360f09db3ac0cba03c5a7b80d8688d4a03b799760b",
		"98363d6f2c3deae404863fc2b43698244e626587ee11b34dd73907379bf7f153",
		"73af72e90d985a53ddbd71c0bdd7cda3994590f08ff2032375021b201b5d7d62",
		"6d4ddb5037a1df6b5d8dc214a205b3104c4487283739130700226352ee4d4197",
		"f82855d6a49d11aef755cc26c843ecbcb0267ea6f0643ea387c62cfb7d1a7e24"},
	{"2d9c4afe9d71deb4694fd00d5cb74c61d59bfdcefabfaa78c6b8bb5fc1fd831a",
		"4405a2f934eaf30dc1dc6f665844a72c179ffab7098042942e32914786e04820",
		"c735033bc49ecaf07e8936930cc853460a624c1026005b01f0907f08c1e447f9",
		"aa3a8b3048358a6ee8bc63462a15df75ff8c7f8bb77566d4a14cdb39d44ad3f5",
		"1ba9ccf41c40c334dfb3229670957e89b857770814d82c81053a9cfb916e645a"},
	{"b799b16aa1c859a5baecee1a32bdaaa6447e8a78c781fe257b57ed08b6d29703",
		"85d24ee9425ae5bbbfb5f972e7212741a4baff12814d1c15257a4d33df552963",
		"e65696b330ae269a21dd38355b3b0e0e8ba063b1b67af2f6140f5ea60e42e926",
		"66110cad99421b884a8a981f14545b6c3f51d1cb71f0dd0bb032b4a7a043bd8a",
		"6430c21a8fb58d23313e5f2adfbaa8610d4e9bf6ba6cd37a59ae6e74e796a0e9"},
	{"bff62ebd0cf6603ce6dbf09d1fed616db866d024a77260e78e4eac3445595e08",
		"20f70a98b6467a7d27a04ed34dc0db6bf7771b722ded7f96b7995768f9c6f925",
		"0b7aa162b8a7ca9d78da1dfeea1dd3b2c0cdcd088746a054c51f7f1ac5e5abb2",
		"4a88e940513e625a8519517ecbdd70914cfc3dcd38914086a34c0c9e2b1f7a57",
		"b4c1a5e6a04eb51cb1fe10a1d109cc1aae1a2ee0143d437e9038374ee9299ccf"},
}

func TestECDHKAT(t *testing.T) {
	for i, v := range katECDH {
		skb, _ := hex.DecodeString(v.sk)
		sk, err := DecodePrivateKey(skb)
		if err != nil {
			t.Fatalf("vector %d: decode private: %v", i, err)
		}

		peerOK, _ := hex.DecodeString(v.peerOK)
		pk, err := DecodePublicKey(peerOK)
		if err != nil {
			t.Fatalf("vector %d: valid peer rejected: %v", i, err)
		}
		shared, ok := sk.ECDH(pk)
		if !ok {
			t.Fatalf("vector %d: ECDH reported failure for valid peer", i)
		}
		if got := hex.EncodeToString(shared[:]); got != v.sharedOK {
			t.Fatalf("vector %d: shared = %s, want %s", i, got, v.sharedOK)
		}

		peerBad, _ := hex.DecodeString(v.peerBad)
		pkBad, err := DecodePublicKey(peerBad)
		if err == nil {
			t.Fatalf("vector %d: invalid peer accepted", i)
		}
		shared, ok = sk.ECDH(pkBad)
		if ok {
			t.Fatalf("vector %d: ECDH reported success for invalid peer", i)
		}
		if got := hex.EncodeToString(shared[:]); got != v.sharedBad {
			t.Fatalf("vector %d: failure shared = %s, want %s", i, got, v.sharedBad)
		}
		// the failure output is deterministic
		shared2, _ := sk.ECDH(pkBad)
		if shared2 != shared {
			t.Fatalf("vector %d: failure output not deterministic", i)
		}
	}
}

func TestECDHSymmetry(t *testing.T) {
	sk1 := NewKeyFromSeed([]byte("alice"))
	sk2 := NewKeyFromSeed([]byte("bob"))
	pk1, err := DecodePublicKey(sk1.Public().Bytes())
	if err != nil {
		t.Fatal(err)
	}
	pk2, err := DecodePublicKey(sk2.Public().Bytes())
	if err != nil {
		t.Fatal(err)
	}
	s1, ok1 := sk1.ECDH(pk2)
	s2, ok2 := sk2.ECDH(pk1)
	if !ok1 || !ok2 || s1 != s2 {
		t.Fatal("ECDH not symmetric")
	}
}

func TestECDHRaw(t *testing.T) {
	sk1 := NewKeyFromSeed([]byte("raw ecdh a"))
	sk2 := NewKeyFromSeed([]byte("raw ecdh b"))
	p1 := ScalarMulGen(sk1.sec)
	p12 := ScalarMul(p1, sk2.sec)

	var src, dst, want [64]byte
	p1.encodeUncompressed(src[:])
	if !ECDHRaw(dst[:], src[:], sk2.sec) {
		t.Fatal("raw ECDH rejected valid input")
	}
	p12.encodeUncompressed(want[:])
	if dst != want {
		t.Fatal("raw ECDH result mismatch")
	}
	src[5] ^= 0x04
	if ECDHRaw(dst[:], src[:], sk2.sec) {
		t.Fatal("raw ECDH accepted corrupted input")
	}
}
