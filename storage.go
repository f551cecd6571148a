// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sentinel

// Storage is the set of inline buffer types an [Array] can be built on.
//
// Every term is a fixed-length Go array of T, so the capacity is part of the
// type and known at compile time. Named array types are accepted through the
// ~ terms (type Row [16]float32 satisfies Storage[float32]).
//
// Supported capacities: 1 through 64, then 96, 128, 192, 256, 384, 512,
// 768, 1024, 2048 and 4096.
type Storage[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T | ~[9]T |
		~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T | ~[17]T |
		~[18]T | ~[19]T | ~[20]T | ~[21]T | ~[22]T | ~[23]T | ~[24]T | ~[25]T |
		~[26]T | ~[27]T | ~[28]T | ~[29]T | ~[30]T | ~[31]T | ~[32]T | ~[33]T |
		~[34]T | ~[35]T | ~[36]T | ~[37]T | ~[38]T | ~[39]T | ~[40]T | ~[41]T |
		~[42]T | ~[43]T | ~[44]T | ~[45]T | ~[46]T | ~[47]T | ~[48]T | ~[49]T |
		~[50]T | ~[51]T | ~[52]T | ~[53]T | ~[54]T | ~[55]T | ~[56]T | ~[57]T |
		~[58]T | ~[59]T | ~[60]T | ~[61]T | ~[62]T | ~[63]T | ~[64]T | ~[96]T |
		~[128]T | ~[192]T | ~[256]T | ~[384]T | ~[512]T | ~[768]T | ~[1024]T |
		~[2048]T | ~[4096]T
}
