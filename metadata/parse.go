package metadata

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/subkit-labs/subkit/scale"
)

// Metadata documents start with "meta" in plain text, then one version
// discriminant byte.
const magic = "meta"

// Versions the discriminant byte can take. V0 through V11 are recognized
// so a stale document produces a version error rather than a codec error,
// but only V12 and V13 can be decoded.
const (
	versionV12 = 12
	versionV13 = 13
	maxVersion = 13
)

type jsonRPCResponse struct {
	JSONRPC string `json:"jsonrpc"`
	Result  string `json:"result"`
}

// ParseJSONRPC parses the JSON-RPC response returned by the node's
// state_getMetadata method.
func ParseJSONRPC(body []byte) (*Metadata, error) {
	var resp jsonRPCResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errorsmod.Wrap(ErrBadDocument, err.Error())
	}
	return ParseHex(resp.Result)
}

// ParseHex parses a hex-encoded metadata document, with or without a
// leading "0x".
func ParseHex(s string) (*Metadata, error) {
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errorsmod.Wrap(ErrBadDocument, err.Error())
	}
	return Parse(raw)
}

// Parse parses a raw metadata document. The document must start with the
// "meta" magic marker.
func Parse(raw []byte) (*Metadata, error) {
	if len(raw) < len(magic)+1 {
		return nil, errorsmod.Wrapf(ErrBadMagic, "document of %d bytes", len(raw))
	}
	if string(raw[:len(magic)]) != magic {
		return nil, errorsmod.Wrapf(ErrBadMagic, "got % x", raw[:len(magic)])
	}

	d := scale.NewDecoder(raw[len(magic):])
	version, err := d.DecodeU8()
	if err != nil {
		return nil, err
	}

	var m *Metadata
	switch {
	case version == versionV13:
		m, err = decodeV13(d)
	case version == versionV12:
		m, err = decodeV12(d)
	case version <= maxVersion:
		return nil, errorsmod.Wrapf(ErrUnsupportedVersion, "version %d is decodable only up from 12", version)
	default:
		return nil, errorsmod.Wrapf(ErrUnsupportedVersion, "unknown version discriminant %d", version)
	}
	if err != nil {
		return nil, err
	}

	m.Version = version
	if err := m.index(); err != nil {
		return nil, err
	}
	return m, nil
}
