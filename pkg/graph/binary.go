package graph

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"
	"unsafe"
)

const (
	magicBytes = "WALKGRPH"
	version    = uint32(1)
	maxNodes   = 10_000_000
	maxEdges   = 50_000_000
)

// Edge attribute flag bits.
const (
	flagStairs    = 1 << 0
	flagRamp      = 1 << 1
	flagCrosswalk = 1 << 2
)

// fileHeader is the binary snapshot header.
type fileHeader struct {
	Magic    [8]byte
	Version  uint32
	NumNodes uint32
	NumEdges uint32
}

// WriteBinary serializes a Graph to a binary snapshot file.
// Arrays are written column-wise with unsafe.Slice for fast zero-copy I/O;
// the CSR arc arrays are rebuilt on load instead of being stored.
func WriteBinary(path string, g *Graph) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(tmpPath) // clean up on error
	}()

	crcWriter := crc32Writer{w: f, hash: crc32.NewIEEE()}
	w := &crcWriter

	numNodes := g.NumNodes()
	numEdges := g.NumEdges()

	hdr := fileHeader{
		Version:  version,
		NumNodes: numNodes,
		NumEdges: numEdges,
	}
	copy(hdr.Magic[:], magicBytes)
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// Node columns.
	lat := make([]float64, numNodes)
	lon := make([]float64, numNodes)
	cat := make([]byte, numNodes)
	for i, n := range g.Nodes {
		lat[i] = n.Lat
		lon[i] = n.Lon
		cat[i] = byte(n.Category)
	}
	if err := writeFloat64Slice(w, lat); err != nil {
		return fmt.Errorf("write NodeLat: %w", err)
	}
	if err := writeFloat64Slice(w, lon); err != nil {
		return fmt.Errorf("write NodeLon: %w", err)
	}
	if err := writeByteSlice(w, cat); err != nil {
		return fmt.Errorf("write NodeCategory: %w", err)
	}

	// Edge columns.
	from := make([]uint32, numEdges)
	to := make([]uint32, numEdges)
	length := make([]float64, numEdges)
	incline := make([]float64, numEdges)
	width := make([]float64, numEdges)
	surface := make([]byte, numEdges)
	flags := make([]byte, numEdges)
	for i, e := range g.Edges {
		from[i] = e.From
		to[i] = e.To
		length[i] = e.LengthMeters
		incline[i] = e.InclineGrade
		width[i] = e.WidthMeters
		surface[i] = byte(e.Surface)
		var fl byte
		if e.HasStairs {
			fl |= flagStairs
		}
		if e.HasRamp {
			fl |= flagRamp
		}
		if e.IsCrosswalk {
			fl |= flagCrosswalk
		}
		flags[i] = fl
	}
	if err := writeUint32Slice(w, from); err != nil {
		return fmt.Errorf("write EdgeFrom: %w", err)
	}
	if err := writeUint32Slice(w, to); err != nil {
		return fmt.Errorf("write EdgeTo: %w", err)
	}
	if err := writeFloat64Slice(w, length); err != nil {
		return fmt.Errorf("write EdgeLength: %w", err)
	}
	if err := writeFloat64Slice(w, incline); err != nil {
		return fmt.Errorf("write EdgeIncline: %w", err)
	}
	if err := writeFloat64Slice(w, width); err != nil {
		return fmt.Errorf("write EdgeWidth: %w", err)
	}
	if err := writeByteSlice(w, surface); err != nil {
		return fmt.Errorf("write EdgeSurface: %w", err)
	}
	if err := writeByteSlice(w, flags); err != nil {
		return fmt.Errorf("write EdgeFlags: %w", err)
	}

	// CRC32 trailer.
	checksum := crcWriter.hash.Sum32()
	if err := binary.Write(f, binary.LittleEndian, checksum); err != nil {
		return fmt.Errorf("write CRC32: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Atomic rename.
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

// ReadBinary deserializes a Graph from a binary snapshot file.
func ReadBinary(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	crcReader := crc32Reader{r: f, hash: crc32.NewIEEE()}
	r := &crcReader

	var hdr fileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	if string(hdr.Magic[:]) != magicBytes {
		return nil, fmt.Errorf("invalid magic bytes: %q", hdr.Magic)
	}
	if hdr.Version != version {
		return nil, fmt.Errorf("unsupported version: %d", hdr.Version)
	}
	if hdr.NumNodes > maxNodes {
		return nil, fmt.Errorf("NumNodes %d exceeds limit %d", hdr.NumNodes, maxNodes)
	}
	if hdr.NumEdges > maxEdges {
		return nil, fmt.Errorf("NumEdges %d exceeds limit %d", hdr.NumEdges, maxEdges)
	}

	numNodes := int(hdr.NumNodes)
	numEdges := int(hdr.NumEdges)

	lat, err := readFloat64Slice(r, numNodes)
	if err != nil {
		return nil, fmt.Errorf("read NodeLat: %w", err)
	}
	lon, err := readFloat64Slice(r, numNodes)
	if err != nil {
		return nil, fmt.Errorf("read NodeLon: %w", err)
	}
	cat, err := readByteSlice(r, numNodes)
	if err != nil {
		return nil, fmt.Errorf("read NodeCategory: %w", err)
	}

	from, err := readUint32Slice(r, numEdges)
	if err != nil {
		return nil, fmt.Errorf("read EdgeFrom: %w", err)
	}
	to, err := readUint32Slice(r, numEdges)
	if err != nil {
		return nil, fmt.Errorf("read EdgeTo: %w", err)
	}
	length, err := readFloat64Slice(r, numEdges)
	if err != nil {
		return nil, fmt.Errorf("read EdgeLength: %w", err)
	}
	incline, err := readFloat64Slice(r, numEdges)
	if err != nil {
		return nil, fmt.Errorf("read EdgeIncline: %w", err)
	}
	width, err := readFloat64Slice(r, numEdges)
	if err != nil {
		return nil, fmt.Errorf("read EdgeWidth: %w", err)
	}
	surface, err := readByteSlice(r, numEdges)
	if err != nil {
		return nil, fmt.Errorf("read EdgeSurface: %w", err)
	}
	flags, err := readByteSlice(r, numEdges)
	if err != nil {
		return nil, fmt.Errorf("read EdgeFlags: %w", err)
	}

	// Read and validate CRC32.
	expectedCRC := crcReader.hash.Sum32()
	var storedCRC uint32
	if err := binary.Read(f, binary.LittleEndian, &storedCRC); err != nil {
		return nil, fmt.Errorf("read CRC32: %w", err)
	}
	if storedCRC != expectedCRC {
		return nil, fmt.Errorf("CRC32 mismatch: stored=%08x computed=%08x", storedCRC, expectedCRC)
	}

	g := &Graph{
		Nodes: make([]Node, numNodes),
		Edges: make([]Edge, numEdges),
	}
	for i := 0; i < numNodes; i++ {
		g.Nodes[i] = Node{Lat: lat[i], Lon: lon[i], Category: Category(cat[i])}
	}
	for i := 0; i < numEdges; i++ {
		if from[i] >= hdr.NumNodes || to[i] >= hdr.NumNodes {
			return nil, fmt.Errorf("edge %d endpoint out of range", i)
		}
		if !(length[i] >= 0) || math.IsInf(length[i], 0) {
			return nil, fmt.Errorf("edge %d has invalid length %f", i, length[i])
		}
		g.Edges[i] = Edge{
			From:         from[i],
			To:           to[i],
			LengthMeters: length[i],
			InclineGrade: incline[i],
			WidthMeters:  width[i],
			Surface:      Surface(surface[i]),
			HasStairs:    flags[i]&flagStairs != 0,
			HasRamp:      flags[i]&flagRamp != 0,
			IsCrosswalk:  flags[i]&flagCrosswalk != 0,
		}
	}

	buildArcs(g)
	return g, nil
}

// Zero-copy I/O helpers using unsafe.Slice.

func writeUint32Slice(w io.Writer, s []uint32) error {
	if len(s) == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*4)
	_, err := w.Write(b)
	return err
}

func writeFloat64Slice(w io.Writer, s []float64) error {
	if len(s) == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*8)
	_, err := w.Write(b)
	return err
}

func writeByteSlice(w io.Writer, s []byte) error {
	if len(s) == 0 {
		return nil
	}
	_, err := w.Write(s)
	return err
}

func readUint32Slice(r io.Reader, n int) ([]uint32, error) {
	if n == 0 {
		return nil, nil
	}
	s := make([]uint32, n)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), n*4)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return s, nil
}

func readFloat64Slice(r io.Reader, n int) ([]float64, error) {
	if n == 0 {
		return nil, nil
	}
	s := make([]float64, n)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), n*8)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return s, nil
}

func readByteSlice(r io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	s := make([]byte, n)
	if _, err := io.ReadFull(r, s); err != nil {
		return nil, err
	}
	return s, nil
}

// CRC32 wrapping writers/readers.

type crc32Writer struct {
	w    io.Writer
	hash crc32Hash
}

type crc32Hash interface {
	Write([]byte) (int, error)
	Sum32() uint32
}

func (cw *crc32Writer) Write(p []byte) (int, error) {
	cw.hash.Write(p)
	return cw.w.Write(p)
}

type crc32Reader struct {
	r    io.Reader
	hash crc32Hash
}

func (cr *crc32Reader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.hash.Write(p[:n])
	}
	return n, err
}
