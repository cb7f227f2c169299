package flat

import (
	"encoding"

	"github.com/pkg/errors"
	"github.com/tinylib/msgp/msgp"
	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = String[[14]byte]{}
	_ encoding.TextAppender    = String[[14]byte]{}
	_ encoding.TextUnmarshaler = (*String[[14]byte])(nil)
	_ yaml.Marshaler           = String[[14]byte]{}
	_ yaml.Unmarshaler         = (*String[[14]byte])(nil)
	_ msgp.Marshaler           = String[[14]byte]{}
	_ msgp.Unmarshaler         = (*String[[14]byte])(nil)
	_ msgp.Encodable           = String[[14]byte]{}
	_ msgp.Decodable           = (*String[[14]byte])(nil)
	_ msgp.Sizer               = String[[14]byte]{}
)

// MarshalText returns a copy of the content.
func (s String[A]) MarshalText() ([]byte, error) {
	return append([]byte(nil), s.Bytes()...), nil
}

// AppendText appends the content to b.
func (s String[A]) AppendText(b []byte) ([]byte, error) {
	return append(b, s.Bytes()...), nil
}

// UnmarshalText replaces the content with text. Unlike Set it does not
// truncate: it fails with ErrOverflow or ErrInvalidUTF8 and leaves s unchanged.
func (s *String[A]) UnmarshalText(text []byte) error {
	return s.assign(bytesToString(text))
}

// MarshalYAML encodes the content as a YAML string scalar.
func (s String[A]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML accepts a scalar node and decodes it like UnmarshalText.
func (s *String[A]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("flat: cannot decode YAML node of kind %d at line %d into a string", value.Kind, value.Line)
	}
	var text string
	if err := value.Decode(&text); err != nil {
		return errors.Wrap(err, "flat")
	}
	if err := s.assign(text); err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	return nil
}

// MarshalMsg appends the content to b as a MessagePack str.
func (s String[A]) MarshalMsg(b []byte) ([]byte, error) {
	return msgp.AppendStringFromBytes(b, s.Bytes()), nil
}

// UnmarshalMsg decodes a MessagePack str from the front of bts and returns
// the remaining bytes.
func (s *String[A]) UnmarshalMsg(bts []byte) ([]byte, error) {
	v, o, err := msgp.ReadStringZC(bts)
	if err != nil {
		return bts, err
	}
	if err := s.assign(bytesToString(v)); err != nil {
		return bts, err
	}
	return o, nil
}

// EncodeMsg writes the content to en as a MessagePack str.
func (s String[A]) EncodeMsg(en *msgp.Writer) error {
	return en.WriteStringFromBytes(s.Bytes())
}

// DecodeMsg reads a MessagePack str from dc, failing like UnmarshalText.
func (s *String[A]) DecodeMsg(dc *msgp.Reader) error {
	var scratch [MaxCap]byte
	v, err := dc.ReadStringAsBytes(scratch[:0])
	if err != nil {
		return err
	}
	return s.assign(bytesToString(v))
}

// Msgsize returns an upper bound on the encoded size.
func (s String[A]) Msgsize() int {
	return msgp.StringPrefixSize + int(s.n)
}
