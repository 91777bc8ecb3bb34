package session

import (
	"bytes"
	"errors"
	"io"
)

const (
	identityFormatVersionCurrent = 2
	identityFormatVersionV1      = 1
)

// Encode serializes an [Identity] into the versioned binary format. Each
// string field is length-prefixed with a single byte, so no field may exceed
// 255 bytes.
func Encode(id *Identity) ([]byte, error) {
	if id == nil {
		return nil, errors.New("nil identity")
	}

	var buf bytes.Buffer

	buf.WriteByte(identityFormatVersionCurrent)

	if err := writeField(&buf, "id", id.ID); err != nil {
		return nil, err
	}
	if err := writeField(&buf, "name", id.Name); err != nil {
		return nil, err
	}
	if err := writeField(&buf, "role", id.Role); err != nil {
		return nil, err
	}
	if err := writeField(&buf, "email", id.Email); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, name, value string) error {
	if len(value) > 255 {
		return errors.New("identity " + name + " too long")
	}
	buf.WriteByte(byte(len(value)))
	buf.WriteString(value)
	return nil
}

// Decode parses a binary identity blob written by [Encode], including blobs
// from the v1 format which predates the email field.
func Decode(data []byte) (*Identity, error) {
	reader := bytes.NewReader(data)

	version, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != identityFormatVersionCurrent && version != identityFormatVersionV1 {
		return nil, errors.New("invalid identity version")
	}

	id := &Identity{}

	if id.ID, err = readField(reader); err != nil {
		return nil, err
	}
	if id.Name, err = readField(reader); err != nil {
		return nil, err
	}
	if id.Role, err = readField(reader); err != nil {
		return nil, err
	}

	if version == identityFormatVersionCurrent {
		if id.Email, err = readField(reader); err != nil {
			return nil, err
		}
	}

	if reader.Len() != 0 {
		return nil, errors.New("trailing bytes after identity")
	}

	return id, nil
}

func readField(reader *bytes.Reader) (string, error) {
	length, err := reader.ReadByte()
	if err != nil {
		return "", err
	}
	field := make([]byte, length)
	if _, err := io.ReadFull(reader, field); err != nil {
		return "", err
	}
	return string(field), nil
}
