package engine

// frame writes the final block(s) of a message into dst: the unprocessed
// tail, the 0x80 marker, zero fill, and the big-endian bit length in the
// last lengthSize bytes. It returns the number of bytes written, which is
// blockSize when the tail leaves room for marker and length field and
// 2*blockSize otherwise.
//
// len(tail) must be less than blockSize.
func frame(dst *[2 * MaxBlockSize]byte, tail []byte, length bitLength, blockSize, lengthSize int) int {
	n := copy(dst[:], tail)
	dst[n] = 0x80
	n++

	end := blockSize
	if n > blockSize-lengthSize {
		end = 2 * blockSize
	}
	clear(dst[n:end])
	length.put(dst[end-lengthSize : end])
	return end
}
