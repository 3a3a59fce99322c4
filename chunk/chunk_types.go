package chunk

// Chunk types registered by the PNG specification.
// The first block are the critical chunks that every file carries,
// the second block are the ancillary ones.
var (
	TypeIHDR = ChunkType{bytes: [4]byte{'I', 'H', 'D', 'R'}} // image header, always the first chunk
	TypePLTE = ChunkType{bytes: [4]byte{'P', 'L', 'T', 'E'}} // palette
	TypeIDAT = ChunkType{bytes: [4]byte{'I', 'D', 'A', 'T'}} // image data
	TypeIEND = ChunkType{bytes: [4]byte{'I', 'E', 'N', 'D'}} // image trailer, always the last chunk

	TypeTRNS = ChunkType{bytes: [4]byte{'t', 'R', 'N', 'S'}} // transparency
	TypeCHRM = ChunkType{bytes: [4]byte{'c', 'H', 'R', 'M'}} // primary chromaticities
	TypeGAMA = ChunkType{bytes: [4]byte{'g', 'A', 'M', 'A'}} // image gamma
	TypeICCP = ChunkType{bytes: [4]byte{'i', 'C', 'C', 'P'}} // embedded ICC profile
	TypeSBIT = ChunkType{bytes: [4]byte{'s', 'B', 'I', 'T'}} // significant bits
	TypeSRGB = ChunkType{bytes: [4]byte{'s', 'R', 'G', 'B'}} // standard RGB color space
	TypeTEXT = ChunkType{bytes: [4]byte{'t', 'E', 'X', 't'}} // textual data
	TypeZTXT = ChunkType{bytes: [4]byte{'z', 'T', 'X', 't'}} // compressed textual data
	TypeITXT = ChunkType{bytes: [4]byte{'i', 'T', 'X', 't'}} // international textual data
	TypeBKGD = ChunkType{bytes: [4]byte{'b', 'K', 'G', 'D'}} // background color
	TypeHIST = ChunkType{bytes: [4]byte{'h', 'I', 'S', 'T'}} // palette histogram
	TypePHYS = ChunkType{bytes: [4]byte{'p', 'H', 'Y', 's'}} // physical pixel dimensions
	TypeSPLT = ChunkType{bytes: [4]byte{'s', 'P', 'L', 'T'}} // suggested palette
	TypeTIME = ChunkType{bytes: [4]byte{'t', 'I', 'M', 'E'}} // last modification time
)
