package gls254

// Precomputed affine windows over the conventional generator B:
// precompB[i] = (i+1)*B, and likewise for (2^32)*B, (2^64)*B and
// (2^96)*B. Values match the reference implementation's tables and
// can be regenerated from BasePoint with makeWindowAffine8.
var precompB = [8]PointAffine{
	{X: F254{v0: F127{lo: 0xb6412f20326b8675, hi: 0x657cb9f79ae29894}, v1: F127{lo: 0x3932450ff66dd010, hi: 0x14c6f62cb2e3915e}}, S: F254{v0: F127{lo: 0x5fadca04023dc896, hi: 0x763522ada04300f1}, v1: F127{lo: 0x206e4c1e9e07345a, hi: 0x4f69a66a2381ca6d}}},
	{X: F254{v0: F127{lo: 0x415a7930d693fa8f, hi: 0x1d78874edf2f1ca6}, v1: F127{lo: 0xf61dea7cdae036f7, hi: 0x4b30c0f5e5f279ea}}, S: F254{v0: F127{lo: 0xc19ed043fbd6be01, hi: 0x693d8f2f6abe9465}, v1: F127{lo: 0x0f2f0d9cd452ab50, hi: 0x19720e490a6ee21c}}},
	{X: F254{v0: F127{lo: 0x0bc573551889fe19, hi: 0x665c451b1393238b}, v1: F127{lo: 0xe053b1d027ca6f4d, hi: 0x5c27a07d34043ea7}}, S: F254{v0: F127{lo: 0xfe1e7723a1f56bb6, hi: 0x7b7805107d15931d}, v1: F127{lo: 0xae7d87efe184e5df, hi: 0x0f6f5f4ef11925d5}}},
	{X: F254{v0: F127{lo: 0xa11db5f206c9a0c8, hi: 0x061309d0c72a3ab3}, v1: F127{lo: 0x91999bbeeed4f57b, hi: 0x77f10dbdc3c0d1da}}, S: F254{v0: F127{lo: 0x38ee9ec6812a13c2, hi: 0x77fbc24a9dca6bb5}, v1: F127{lo: 0x181db8c3c034074b, hi: 0x6d296d30a8e44bbd}}},
	{X: F254{v0: F127{lo: 0xc715b038cf1fab5f, hi: 0x0da235c1610ad947}, v1: F127{lo: 0xd3ac0ff57e52b936, hi: 0x7094dac342ea1434}}, S: F254{v0: F127{lo: 0x06a589bb32462848, hi: 0x0f8767251566bbaf}, v1: F127{lo: 0x9f808ac917c2daab, hi: 0x32b14a6855fe4d2c}}},
	{X: F254{v0: F127{lo: 0xb210b5452fea71f8, hi: 0x14d11ed1921194f5}, v1: F127{lo: 0x476ff44b4e3e4518, hi: 0x6f68aac2007a5a24}}, S: F254{v0: F127{lo: 0x57be3bf043c891fa, hi: 0x4f28eeaf548c5d6c}, v1: F127{lo: 0x72895485e898732d, hi: 0x5683b98cb3eb369b}}},
	{X: F254{v0: F127{lo: 0x1f6121cea16eac69, hi: 0x19eb28fdbc02778c}, v1: F127{lo: 0x0e86728bb2803207, hi: 0x03e9b9fcd9893789}}, S: F254{v0: F127{lo: 0x13de2dae7604abe1, hi: 0x5121d6b7a6611933}, v1: F127{lo: 0xafc835f39644c754, hi: 0x0a1f6e2de19e6cb3}}},
	{X: F254{v0: F127{lo: 0xcdcb2821f80bd001, hi: 0x4d1fcc11c02477b7}, v1: F127{lo: 0x2a6a17af237c442c, hi: 0x1301db82d4d6114c}}, S: F254{v0: F127{lo: 0x83cf1aa244c7077a, hi: 0x327ac316bc942dcb}, v1: F127{lo: 0xaa4c2e848d0bbfa4, hi: 0x235df1f92a0788b2}}},
}

var precompB32 = [8]PointAffine{
	{X: F254{v0: F127{lo: 0x635575814ddb30b8, hi: 0x5b61982b5030fa03}, v1: F127{lo: 0x11dfba3c22fc0a21, hi: 0x59b8aaf20f317c69}}, S: F254{v0: F127{lo: 0x24ccd3e54ba656f7, hi: 0x75e449438f12a690}, v1: F127{lo: 0x35a7574a83593fad, hi: 0x605b7617d281984b}}},
	{X: F254{v0: F127{lo: 0x90cf4e3563e928f5, hi: 0x50074e815223d2e7}, v1: F127{lo: 0x5c404a45354b113c, hi: 0x0fa6e6aec8167241}}, S: F254{v0: F127{lo: 0xa1301f5b6da726aa, hi: 0x417e796a36fade6f}, v1: F127{lo: 0x132b507ca030f951, hi: 0x1b05958227837bd6}}},
	{X: F254{v0: F127{lo: 0x3eb8194bbd1848ed, hi: 0x49233033a973e23f}, v1: F127{lo: 0x162e3ac59659b3c6, hi: 0x55d7e164cf1b0a47}}, S: F254{v0: F127{lo: 0x8408ae6f50d0746f, hi: 0x54b1ef88da5b5d8c}, v1: F127{lo: 0xbeef1bc0e0266218, hi: 0x47aeba1631bd68f4}}},
	{X: F254{v0: F127{lo: 0xacdcde13febca318, hi: 0x2054a0686f23ca1c}, v1: F127{lo: 0x4fc664ce9a944830, hi: 0x0ee627625cc70929}}, S: F254{v0: F127{lo: 0x10ffcf13f712c3d2, hi: 0x7aef8651378dadcf}, v1: F127{lo: 0x83bf078a3a88bb41, hi: 0x6540aa59ed94ccb7}}},
	{X: F254{v0: F127{lo: 0xc3a9cdf7548a5b5c, hi: 0x7cc5582309251988}, v1: F127{lo: 0x359cfd6f1d8fb1b6, hi: 0x16617ea6aebb6dfe}}, S: F254{v0: F127{lo: 0x5402d0843b570a8d, hi: 0x72e1b8fcddca45af}, v1: F127{lo: 0x8e8947156a5f05af, hi: 0x47e972b54943a009}}},
	{X: F254{v0: F127{lo: 0x21ed49969d224ce8, hi: 0x502bf009f0314ffd}, v1: F127{lo: 0x378ad19d29edeb9f, hi: 0x217f953e0f08ea14}}, S: F254{v0: F127{lo: 0xfbeacaa858aa005f, hi: 0x5c3956eab084d2e9}, v1: F127{lo: 0x02fff9259c0af3dd, hi: 0x2e6c45584da7b8f3}}},
	{X: F254{v0: F127{lo: 0xefe3d1c9a435418e, hi: 0x29220a4178b4b863}, v1: F127{lo: 0xf43a2709ab5842a9, hi: 0x0c7c4f1540a92711}}, S: F254{v0: F127{lo: 0x1c6b77917d638424, hi: 0x611353a716ed213b}, v1: F127{lo: 0x64291f074bc271d7, hi: 0x65dd7ec41d26e566}}},
	{X: F254{v0: F127{lo: 0x9b4da61dc194ecc9, hi: 0x7cb707bdca8836cf}, v1: F127{lo: 0x77acdf95d4bffdf2, hi: 0x36586184d3a61f80}}, S: F254{v0: F127{lo: 0xcdaa62f1c2ce8b3d, hi: 0x10b26e50824b839b}, v1: F127{lo: 0xfc7e3b92667c1f45, hi: 0x27f128ab267facd9}}},
}

var precompB64 = [8]PointAffine{
	{X: F254{v0: F127{lo: 0x261231594d3ae7ac, hi: 0x082a5bbf28ceb8ad}, v1: F127{lo: 0xd959b91183030f30, hi: 0x4447b9e05af1898e}}, S: F254{v0: F127{lo: 0x2c7a54504d3de629, hi: 0x431796a3a6f9484c}, v1: F127{lo: 0x357d7d22e5d3c8cd, hi: 0x147ccffbe5323c2e}}},
	{X: F254{v0: F127{lo: 0x05704bf4f207fac6, hi: 0x0f16c7b1161bd3a2}, v1: F127{lo: 0x1ad76af2870dec6e, hi: 0x4fb614a7d0bf2740}}, S: F254{v0: F127{lo: 0x45d7c01c28566d8a, hi: 0x005002ff4077abed}, v1: F127{lo: 0x6542a7765672d4b3, hi: 0x04137083a98ab48d}}},
	{X: F254{v0: F127{lo: 0x27c990fff0350244, hi: 0x18a5bc91857f7525}, v1: F127{lo: 0x6004c03579997083, hi: 0x1744491ae0e1b992}}, S: F254{v0: F127{lo: 0x9c8593d717682dd3, hi: 0x402364e084ae8661}, v1: F127{lo: 0x20f86314b2e2b9f3, hi: 0x545af79a4d9b1fb5}}},
	{X: F254{v0: F127{lo: 0x23cbd429dda5dc0b, hi: 0x27df09b66a5208c3}, v1: F127{lo: 0x10bcc45e8b8ff984, hi: 0x4d7fe346205df31f}}, S: F254{v0: F127{lo: 0x0cb81a89c97f02a7, hi: 0x3c1c9d277d64dbf2}, v1: F127{lo: 0xf84a977b704354b3, hi: 0x2c8704a6368738e4}}},
	{X: F254{v0: F127{lo: 0x5fba8828448b153f, hi: 0x01e91adb9a0f0423}, v1: F127{lo: 0x1441b5344bfabffd, hi: 0x6d0a611aa4e2d56f}}, S: F254{v0: F127{lo: 0x67c71e1cc6ed13fe, hi: 0x4defbbd5a6321549}, v1: F127{lo: 0xa187801f5515923f, hi: 0x5fad2693b7921be3}}},
	{X: F254{v0: F127{lo: 0xcbd5e2459a07d071, hi: 0x578067f7ce94bd91}, v1: F127{lo: 0x393d9b5722ebb7b9, hi: 0x07f1e938f4c2c566}}, S: F254{v0: F127{lo: 0xaf27af4b7ace6fec, hi: 0x6de1b7a62ce0a5cf}, v1: F127{lo: 0xd0c6fca2633b4d64, hi: 0x2813a2ea989f7b92}}},
	{X: F254{v0: F127{lo: 0x0a58149a41dbb5a8, hi: 0x106df92d1073e8f8}, v1: F127{lo: 0x197899fc493e86b2, hi: 0x2e0e05ce2197b358}}, S: F254{v0: F127{lo: 0x2d603f9b709bc381, hi: 0x26507080a19eed77}, v1: F127{lo: 0x5d86707b1a0926fe, hi: 0x2c55b87755f08b86}}},
	{X: F254{v0: F127{lo: 0x43086dd4cd1523b9, hi: 0x25b6941e4cf14dc9}, v1: F127{lo: 0x0c30580b40028b29, hi: 0x6b6816ffa4f8eddf}}, S: F254{v0: F127{lo: 0xb9ffb6ef84749178, hi: 0x16bfa2f78d83172b}, v1: F127{lo: 0xcd9f9599577e2135, hi: 0x0b9e5031c1fb34bf}}},
}

var precompB96 = [8]PointAffine{
	{X: F254{v0: F127{lo: 0x653346e6da88e093, hi: 0x300022659cd13872}, v1: F127{lo: 0x65532d395f29d20b, hi: 0x30fe4c5c7cb5de42}}, S: F254{v0: F127{lo: 0x0d181fe3421d4a31, hi: 0x35f3e72694f4d3f7}, v1: F127{lo: 0x0ab661addd3ed40c, hi: 0x542b83c04f2cade5}}},
	{X: F254{v0: F127{lo: 0x5450a803cf11a8c7, hi: 0x1a3efc521db4620c}, v1: F127{lo: 0x3fa30220b4d6810f, hi: 0x56c042181bc8af08}}, S: F254{v0: F127{lo: 0x97e3b24dfce09354, hi: 0x7b0f3bafe7e9c001}, v1: F127{lo: 0x2dd1d729bd91fc40, hi: 0x05c74680c21b1ad2}}},
	{X: F254{v0: F127{lo: 0x8f7a7f37431c5c00, hi: 0x4487cc9622605514}, v1: F127{lo: 0x754a0db2955e5d1c, hi: 0x6aa1be4ab8d0072a}}, S: F254{v0: F127{lo: 0xa6d4611f6b1bfc14, hi: 0x003903646b2e8951}, v1: F127{lo: 0x723a689d0d536882, hi: 0x3b33b3bd973b29ab}}},
	{X: F254{v0: F127{lo: 0xe2d4ee8af4444850, hi: 0x7c4ccd23d2d38b53}, v1: F127{lo: 0x66c8957aecc474e6, hi: 0x702916069cf325e5}}, S: F254{v0: F127{lo: 0x6fec1e66e0752cc9, hi: 0x3e40f3d73fc42538}, v1: F127{lo: 0x5e66d9fe8a03a6d1, hi: 0x73fdad6877c4aedf}}},
	{X: F254{v0: F127{lo: 0x20505fa34f97e0a6, hi: 0x79acb74516909f86}, v1: F127{lo: 0xa163a5dc82094271, hi: 0x1b6e54562f63a6bc}}, S: F254{v0: F127{lo: 0x9efd3dd17e812c96, hi: 0x6901eb6c136fd51d}, v1: F127{lo: 0x13157f6fc0488eea, hi: 0x67729c400270a4c0}}},
	{X: F254{v0: F127{lo: 0xdbeaf734e30aa449, hi: 0x2e1d908eb81ec506}, v1: F127{lo: 0xf261172761127b0e, hi: 0x2dc2fa82ba512d9f}}, S: F254{v0: F127{lo: 0x4417289968e311d9, hi: 0x57f6d770d5748ebc}, v1: F127{lo: 0x97723cd499e2d413, hi: 0x283638aecc746ef0}}},
	{X: F254{v0: F127{lo: 0xe16bba3d8b0bccc7, hi: 0x29be1ee444c9e28f}, v1: F127{lo: 0x6e4a728a751536a3, hi: 0x08fd01f000888f7c}}, S: F254{v0: F127{lo: 0x3346c2076105457b, hi: 0x290bc8d967b0008b}, v1: F127{lo: 0xcc0e64b78c9c3d6e, hi: 0x14197a7c2e01b797}}},
	{X: F254{v0: F127{lo: 0x891b5765f4b109e4, hi: 0x4c341f7803aa5b0a}, v1: F127{lo: 0x7df0a0f3b329c9a0, hi: 0x6e637eae55940920}}, S: F254{v0: F127{lo: 0x81c1b2ef7624b8a0, hi: 0x528f805e54f22b55}, v1: F127{lo: 0x43a540e67a0ffb48, hi: 0x7a79d0b607be133f}}},
}
