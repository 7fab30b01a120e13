package resolve

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

//StoreW appends resolved records to a zstd-compressed JSON-lines file. This
//is the collaborator layer's memory of past resolutions; the computation
//core never touches it.
type StoreW struct {
	f         *os.File
	h         io.WriteCloser
	enc       *json.Encoder
	filename  string
	writeable bool
}

//NewStore creates (or truncates) a record store at name.
func NewStore(name string) (*StoreW, error) {
	S := new(StoreW)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	w, err := zstd.NewWriter(S.f)
	if err != nil {
		S.f.Close()
		return nil, err
	}
	S.h = w
	S.enc = json.NewEncoder(w)
	S.filename = name
	S.writeable = true
	return S, nil
}

//Put appends one record.
func (S *StoreW) Put(rec *Record) error {
	if !S.writeable {
		return fmt.Errorf("resolve: store %s is closed", S.filename)
	}
	return S.enc.Encode(rec)
}

func (S *StoreW) Close() error {
	if S == nil || !S.writeable {
		return nil
	}
	S.writeable = false
	if err := S.h.Close(); err != nil {
		S.f.Close()
		return err
	}
	return S.f.Close()
}

//ReadStore loads every record from a store file written by StoreW, in the
//order they were put.
func ReadStore(name string) ([]*Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var recs []*Record
	dec := json.NewDecoder(r)
	for {
		rec := new(Record)
		if err := dec.Decode(rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
