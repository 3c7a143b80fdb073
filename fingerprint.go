package tracekit

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a fast non-cryptographic digest of the record.
// Identity fields, the header slots and the data section all contribute,
// so any mutation changes the digest. Checked sets use fingerprints to
// skip re-validating unchanged records.
func (r *Record) Fingerprint() uint64 {
	if r == nil {
		return 0
	}
	d := xxhash.New()
	hashString(d, r.Location)
	hashString(d, r.Name)
	hashString(d, r.FormatType)
	hashUint64(d, uint64(int64(r.Version)))
	hashString(d, string(r.ByteOrder))
	if r.HasData {
		d.Write([]byte{1})
	} else {
		d.Write([]byte{0})
	}
	if r.Header != nil {
		var buf [8]byte
		for _, s := range r.Header.slots {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(s))
			d.Write(buf[:])
		}
	}
	if r.Data != nil {
		d.Write(r.Data)
	}
	return d.Sum64()
}

// Fingerprint returns a digest of the whole set, sensitive to record
// order and content.
func (s RecordSet) Fingerprint() uint64 {
	d := xxhash.New()
	for _, r := range s {
		hashUint64(d, r.Fingerprint())
	}
	return d.Sum64()
}

func hashString(d *xxhash.Digest, s string) {
	hashUint64(d, uint64(len(s)))
	d.WriteString(s)
}

func hashUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	d.Write(buf[:])
}
