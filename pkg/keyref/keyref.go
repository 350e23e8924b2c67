// SPDX-License-Identifier: Apache-2.0

// Package keyref extracts the identifiers gpg accepts for --recipient and key
// arguments from an exported OpenPGP key file.
package keyref

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ProtonMail/gopenpgp/v3/crypto"
)

// ErrNoKeyData is returned when the input is empty
var ErrNoKeyData = errors.New("no key data")

// KeyRef holds the ways a key can be named on the gpg command line
type KeyRef struct {
	KeyID       string // 16 hex digits, upper case
	Fingerprint string // upper case hex
	Name        string
	Email       string
}

// Identifier returns the long key id in the 0x form gpg accepts
func (k KeyRef) Identifier() string {
	return "0x" + k.KeyID
}

// RecipientHint returns the email when the key has one, else the identifier
func (k KeyRef) RecipientHint() string {
	if k.Email != "" {
		return k.Email
	}
	return k.Identifier()
}

// Load reads an armored or binary key file
func Load(path string) (*KeyRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	ref, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ref, nil
}

// Parse parses armored or binary key data
func Parse(data []byte) (*KeyRef, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrNoKeyData
	}

	key, err := crypto.NewKeyFromArmored(string(data))
	if err != nil {
		// Try binary format
		key, err = crypto.NewKey(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse key: %w", err)
		}
	}

	entity := key.GetEntity()
	if entity == nil || entity.PrimaryKey == nil {
		return nil, fmt.Errorf("invalid key structure")
	}

	ref := &KeyRef{
		KeyID:       strings.ToUpper(key.GetHexKeyID()),
		Fingerprint: strings.ToUpper(key.GetFingerprint()),
	}

	// Identities is a map; take the first user id in sorted order so the
	// result does not depend on map iteration
	ids := make([]string, 0, len(entity.Identities))
	for id := range entity.Identities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		identity := entity.Identities[id]
		if identity.UserId != nil {
			ref.Name = identity.UserId.Name
			ref.Email = identity.UserId.Email
			break
		}
	}

	return ref, nil
}
