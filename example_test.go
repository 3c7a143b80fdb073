package tracekit_test

import (
	"bytes"
	"fmt"

	"github.com/seisgo/tracekit"
	"github.com/seisgo/tracekit/source/memory"
)

func ExampleResolve() {
	// Serialize a version-6 header big-endian, then resolve it back.
	rec := tracekit.NewRecord("/data/run1", "event.sac", tracekit.FormatSAC, 6, tracekit.BigEndian)
	var buf bytes.Buffer
	_ = rec.Header.Write(&buf, tracekit.BigEndian)

	version, order, _ := tracekit.Resolve(bytes.NewReader(buf.Bytes()))

	fmt.Println(version, order)
	// Output:
	// 6 big-endian
}

func ExampleCheck() {
	set := tracekit.RecordSet{
		tracekit.NewRecord("/data/run1", "bhz.sac", tracekit.FormatSAC, 6, tracekit.LittleEndian),
		tracekit.NewRecord("/data/run1", "shz.sac", tracekit.FormatSAC, 6, tracekit.LittleEndian),
	}
	set[1].ByteOrder = "middle-endian"

	rep := tracekit.Check(set)

	fmt.Println(rep.ID)
	fmt.Println(rep.Message)
	// Output:
	// tracekit.check.endianBad
	// record 1 (shz.sac): byte order "middle-endian" is not "big-endian" or "little-endian"
}

func ExampleRecordSet_SetField() {
	set := tracekit.RecordSet{
		tracekit.NewRecord("/data/run1", "bhz.sac", tracekit.FormatSAC, 6, tracekit.LittleEndian),
	}

	// SetField mutates a copy; the original set keeps its values.
	stamped, _ := set.SetField("evdp", 33)

	before, _ := set.GetField("evdp")
	after, _ := stamped.GetField("evdp")
	fmt.Println(before[0], after[0])
	// Output:
	// -12345 33
}

func ExampleSelect() {
	set := tracekit.RecordSet{
		tracekit.NewRecord("/data/run1", "anmo.bhz.sac", tracekit.FormatSAC, 6, tracekit.LittleEndian),
		tracekit.NewRecord("/data/run1", "anmo.bhn.sac", tracekit.FormatSAC, 6, tracekit.LittleEndian),
		tracekit.NewRecord("/data/run1", "pab.lhz.sac", tracekit.FormatSAC, 6, tracekit.LittleEndian),
	}

	// Keep the vertical components.
	vertical := tracekit.Select(set, tracekit.ByName("*hz*"))

	for _, r := range vertical {
		fmt.Println(r.Name)
	}
	// Output:
	// anmo.bhz.sac
	// pab.lhz.sac
}

func ExampleSetValidation() {
	// Switch checking off for a bulk import, then restore it.
	restore := tracekit.SetValidation(false)
	defer restore()

	var empty tracekit.RecordSet
	fmt.Println(tracekit.Check(empty) == nil)
	// Output:
	// true
}

func ExampleToolkit() {
	src := memory.New()

	// Seed the source with one synthetic trace: a little-endian header
	// followed by a short data section.
	rec := tracekit.NewRecord("memory", "quake.sac", tracekit.FormatSAC, 6, tracekit.LittleEndian)
	var buf bytes.Buffer
	_ = rec.Header.Write(&buf, tracekit.LittleEndian)
	buf.Write([]byte{1, 2, 3, 4})
	src.Put("quake.sac", buf.Bytes())

	kit := tracekit.NewToolkit(tracekit.WithSource(src))

	got, _ := kit.ReadRecord("quake.sac")
	res := kit.Resolve("quake.sac")

	fmt.Println(got.Name)
	fmt.Println(res.Version, res.ByteOrder)
	// Output:
	// quake.sac
	// 6 little-endian
}
