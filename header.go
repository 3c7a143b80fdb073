package tracekit

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Header geometry and the fixed on-disk layout of the header region.
//
// In memory a header is HeaderRows scalar slots in a single column. On disk
// the same fields occupy HeaderSize bytes: the real fields as 4-byte floats,
// the integer fields as 4-byte signed integers, then the character region
// with one byte per character cell.
const (
	// HeaderRows and HeaderCols fix the in-memory header shape.
	HeaderRows = 302
	HeaderCols = 1

	realSlots = 70  // slots 0..69, float fields
	intSlots  = 40  // slots 70..109, integer/enum/logical fields
	charSlots = 192 // slots 110..301, one character per slot

	charSlotBase = realSlots + intSlots

	intRegionOffset  = realSlots * 4                  // 280
	charRegionOffset = intRegionOffset + intSlots*4   // 440
	HeaderSize       = charRegionOffset + charSlots   // 632

	versionSlot = 76

	// VersionOffset is the byte offset of the 4-byte version field inside
	// the on-disk header region. It is a fixed contract constant shared by
	// every supported format family.
	VersionOffset = intRegionOffset + (versionSlot-realSlots)*4 // 304

	// VersionWidth is the byte width of the on-disk version field.
	VersionWidth = 4
)

// Undefined marks numeric header slots that carry no value. Character
// fields use the same digits, space padded to the field width.
const Undefined = -12345

const undefinedString = "-12345"

// FieldKind classifies header fields by storage class.
type FieldKind int

const (
	// FieldReal fields hold one float value in one slot.
	FieldReal FieldKind = iota
	// FieldInt fields hold one integer, enum or logical value in one slot.
	FieldInt
	// FieldChar fields hold a short string, one character per slot.
	FieldChar
)

// Field describes one named header field and the slots it occupies.
type Field struct {
	Name string
	Kind FieldKind
	Slot int // first slot index
	Len  int // slot count: 1 for numeric fields, character count otherwise
}

var (
	headerFields []Field
	fieldByName  map[string]Field
)

func init() {
	headerFields = buildFieldTable()
	fieldByName = make(map[string]Field, len(headerFields))
	for _, f := range headerFields {
		fieldByName[f.Name] = f
	}
}

// buildFieldTable lays out the named header fields. Slot positions follow
// the classic trace header word order; gaps are unused filler words.
func buildFieldTable() []Field {
	var fields []Field
	real := func(name string, slot int) {
		fields = append(fields, Field{Name: name, Kind: FieldReal, Slot: slot, Len: 1})
	}
	integer := func(name string, slot int) {
		fields = append(fields, Field{Name: name, Kind: FieldInt, Slot: slot, Len: 1})
	}
	char := func(name string, slot, n int) {
		fields = append(fields, Field{Name: name, Kind: FieldChar, Slot: slot, Len: n})
	}
	seq := func(prefix string, first, count int, add func(string, int)) {
		for i := 0; i < count; i++ {
			add(fmt.Sprintf("%s%d", prefix, i), first+i)
		}
	}

	// Real fields: timing, station and event coordinates, amplitudes.
	real("delta", 0)
	real("depmin", 1)
	real("depmax", 2)
	real("scale", 3)
	real("odelta", 4)
	real("b", 5)
	real("e", 6)
	real("o", 7)
	real("a", 8)
	real("fmt", 9)
	seq("t", 10, 10, real)
	real("f", 20)
	seq("resp", 21, 10, real)
	real("stla", 31)
	real("stlo", 32)
	real("stel", 33)
	real("stdp", 34)
	real("evla", 35)
	real("evlo", 36)
	real("evel", 37)
	real("evdp", 38)
	real("mag", 39)
	seq("user", 40, 10, real)
	real("dist", 50)
	real("az", 51)
	real("baz", 52)
	real("gcarc", 53)
	real("sb", 54)
	real("sdelta", 55)
	real("depmen", 56)
	real("cmpaz", 57)
	real("cmpinc", 58)
	real("xminimum", 59)
	real("xmaximum", 60)
	real("yminimum", 61)
	real("ymaximum", 62)

	// Integer, enum and logical fields. The version field sits at slot 76.
	integer("nzyear", 70)
	integer("nzjday", 71)
	integer("nzhour", 72)
	integer("nzmin", 73)
	integer("nzsec", 74)
	integer("nzmsec", 75)
	integer("nvhdr", versionSlot)
	integer("norid", 77)
	integer("nevid", 78)
	integer("npts", 79)
	integer("nspts", 80)
	integer("nwfid", 81)
	integer("nxsize", 82)
	integer("nysize", 83)
	integer("iftype", 85)
	integer("idep", 86)
	integer("iztype", 87)
	integer("iinst", 89)
	integer("istreg", 90)
	integer("ievreg", 91)
	integer("ievtyp", 92)
	integer("iqual", 93)
	integer("isynth", 94)
	integer("imagtyp", 95)
	integer("imagsrc", 96)
	integer("leven", 105)
	integer("lpspol", 106)
	integer("lovrok", 107)
	integer("lcalda", 108)

	// Character fields: 8 characters each except the 16-character event name.
	char("kstnm", 110, 8)
	char("kevnm", 118, 16)
	char("khole", 134, 8)
	char("ko", 142, 8)
	char("ka", 150, 8)
	for i := 0; i < 10; i++ {
		char(fmt.Sprintf("kt%d", i), 158+i*8, 8)
	}
	char("kf", 238, 8)
	for i := 0; i < 3; i++ {
		char(fmt.Sprintf("kuser%d", i), 246+i*8, 8)
	}
	char("kcmpnm", 270, 8)
	char("knetwk", 278, 8)
	char("kdatrd", 286, 8)
	char("kinst", 294, 8)

	return fields
}

// LookupField returns the layout of a named header field.
func LookupField(name string) (Field, bool) {
	f, ok := fieldByName[strings.ToLower(name)]
	return f, ok
}

// Fields returns the named header fields in slot order.
func Fields() []Field {
	out := make([]Field, len(headerFields))
	copy(out, headerFields)
	return out
}

// Header is the parsed header block of one record: a column of scalar
// slots, one per numeric field and one per character cell. A freshly built
// header has every field undefined.
//
// The shape is carried explicitly so structurally malformed headers remain
// representable; the record-set validator rejects anything that is not
// HeaderRows by HeaderCols.
type Header struct {
	rows, cols int
	slots      []float64
}

// NewHeader returns a header of the canonical shape with every field set
// to its undefined value.
func NewHeader() *Header {
	h := &Header{
		rows:  HeaderRows,
		cols:  HeaderCols,
		slots: make([]float64, HeaderRows),
	}
	for i := 0; i < charSlotBase; i++ {
		h.slots[i] = Undefined
	}
	for _, f := range headerFields {
		if f.Kind == FieldChar {
			h.setChars(f, undefinedString)
		}
	}
	return h
}

// Shape returns the row and column counts of the header block.
func (h *Header) Shape() (rows, cols int) {
	if h == nil {
		return 0, 0
	}
	return h.rows, h.cols
}

// wellFormed reports whether the header has the canonical shape and a slot
// buffer to match.
func (h *Header) wellFormed() bool {
	return h != nil && h.rows == HeaderRows && h.cols == HeaderCols && len(h.slots) == HeaderRows
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	if h == nil {
		return nil
	}
	dup := &Header{rows: h.rows, cols: h.cols, slots: make([]float64, len(h.slots))}
	copy(dup.slots, h.slots)
	return dup
}

// Get returns the value of a numeric header field. Character fields are
// read with GetString.
func (h *Header) Get(name string) (float64, error) {
	f, err := h.numericField(name)
	if err != nil {
		return 0, err
	}
	return h.slots[f.Slot], nil
}

// Set assigns a numeric header field. Character fields are written with
// SetString.
func (h *Header) Set(name string, v float64) error {
	f, err := h.numericField(name)
	if err != nil {
		return err
	}
	h.slots[f.Slot] = v
	return nil
}

// GetString returns the value of a character header field with trailing
// padding removed. An undefined field returns the empty string.
func (h *Header) GetString(name string) (string, error) {
	f, err := h.charField(name)
	if err != nil {
		return "", err
	}
	raw := make([]byte, f.Len)
	for i := 0; i < f.Len; i++ {
		c := h.slots[f.Slot+i]
		if c < 0 || c > 255 || math.IsNaN(c) {
			c = ' '
		}
		raw[i] = byte(c)
	}
	s := strings.TrimRight(string(raw), " \x00")
	if s == undefinedString {
		return "", nil
	}
	return s, nil
}

// SetString assigns a character header field, truncating to the field
// width and padding with spaces.
func (h *Header) SetString(name, s string) error {
	f, err := h.charField(name)
	if err != nil {
		return err
	}
	h.setChars(f, s)
	return nil
}

func (h *Header) setChars(f Field, s string) {
	if len(s) > f.Len {
		s = s[:f.Len]
	}
	for i := 0; i < f.Len; i++ {
		c := byte(' ')
		if i < len(s) {
			c = s[i]
		}
		h.slots[f.Slot+i] = float64(c)
	}
}

// IsUndefined reports whether a named field carries no value.
func (h *Header) IsUndefined(name string) bool {
	f, ok := LookupField(name)
	if !ok || !h.wellFormed() {
		return true
	}
	if f.Kind == FieldChar {
		s, err := h.GetString(name)
		return err != nil || s == ""
	}
	return h.slots[f.Slot] == Undefined
}

// Version returns the value of the header version slot, or zero when the
// header is malformed or the slot is undefined.
func (h *Header) Version() int {
	if !h.wellFormed() {
		return 0
	}
	v := h.slots[versionSlot]
	if v == Undefined || v <= 0 {
		return 0
	}
	return int(v)
}

func (h *Header) numericField(name string) (Field, error) {
	f, err := h.lookup(name)
	if err != nil {
		return Field{}, err
	}
	if f.Kind == FieldChar {
		return Field{}, fmt.Errorf("%w: %q is a character field, use GetString/SetString", ErrUnknownField, name)
	}
	return f, nil
}

func (h *Header) charField(name string) (Field, error) {
	f, err := h.lookup(name)
	if err != nil {
		return Field{}, err
	}
	if f.Kind != FieldChar {
		return Field{}, fmt.Errorf("%w: %q is a numeric field, use Get/Set", ErrUnknownField, name)
	}
	return f, nil
}

func (h *Header) lookup(name string) (Field, error) {
	if !h.wellFormed() {
		return Field{}, fmt.Errorf("%w: header shape is not %dx%d", ErrBadHeader, HeaderRows, HeaderCols)
	}
	f, ok := LookupField(name)
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// ReadHeader decodes the on-disk header region from r using the given byte
// order. It consumes exactly HeaderSize bytes.
func ReadHeader(r io.Reader, order ByteOrder) (*Header, error) {
	bo := order.Binary()
	if bo == nil {
		return nil, fmt.Errorf("%w: %q", ErrBadByteOrder, order)
	}

	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: header region truncated", ErrTooShort)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	h := &Header{
		rows:  HeaderRows,
		cols:  HeaderCols,
		slots: make([]float64, HeaderRows),
	}
	for i := 0; i < realSlots; i++ {
		h.slots[i] = float64(math.Float32frombits(bo.Uint32(buf[i*4:])))
	}
	for i := 0; i < intSlots; i++ {
		h.slots[realSlots+i] = float64(int32(bo.Uint32(buf[intRegionOffset+i*4:])))
	}
	for i := 0; i < charSlots; i++ {
		h.slots[charSlotBase+i] = float64(buf[charRegionOffset+i])
	}
	return h, nil
}

// Write encodes the header region to w using the given byte order. The
// header must have the canonical shape.
func (h *Header) Write(w io.Writer, order ByteOrder) error {
	bo := order.Binary()
	if bo == nil {
		return fmt.Errorf("%w: %q", ErrBadByteOrder, order)
	}
	if !h.wellFormed() {
		return fmt.Errorf("%w: header shape is not %dx%d", ErrBadHeader, HeaderRows, HeaderCols)
	}

	buf := make([]byte, HeaderSize)
	for i := 0; i < realSlots; i++ {
		bo.PutUint32(buf[i*4:], math.Float32bits(float32(h.slots[i])))
	}
	for i := 0; i < intSlots; i++ {
		bo.PutUint32(buf[intRegionOffset+i*4:], uint32(int32(h.slots[realSlots+i])))
	}
	for i := 0; i < charSlots; i++ {
		c := h.slots[charSlotBase+i]
		if c < 0 || c > 255 || math.IsNaN(c) {
			c = ' '
		}
		buf[charRegionOffset+i] = byte(c)
	}

	_, err := w.Write(buf)
	return err
}
