package fractalsdk

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// Amount
// ============================================================================

// AmountScale is the number of Amount units in one credit.
const AmountScale = 1000

// Amount is a quantity of credits in thousandths. It is encoded on the wire
// as an integer.
type Amount int64

// Credits builds an Amount from whole credits.
func Credits(n int64) Amount { return Amount(n * AmountScale) }

// String formats the amount as credits with three decimals, e.g. "12.500".
func (a Amount) String() string {
	sign := ""
	u := uint64(a)
	if a < 0 {
		sign = "-"
		u = uint64(-(a + 1)) + 1
	}
	return fmt.Sprintf("%s%d.%03d", sign, u/AmountScale, u%AmountScale)
}

// maxWholeCredits is the largest whole part ParseAmount accepts.
const maxWholeCredits = (math.MaxInt64 - (AmountScale - 1)) / AmountScale

// ParseAmount parses a decimal credit amount with at most three decimals.
// Only a single leading '-' is accepted; both parts must be plain digits.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}

	digits, neg := strings.CutPrefix(s, "-")

	whole, frac, _ := strings.Cut(digits, ".")
	if len(frac) > 3 {
		return 0, fmt.Errorf("amount %q has more than 3 decimals", s)
	}
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil || w > maxWholeCredits {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}

	var f uint64
	if frac != "" {
		frac += strings.Repeat("0", 3-len(frac))
		if f, err = strconv.ParseUint(frac, 10, 64); err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
	}

	v := int64(w*AmountScale + f) // #nosec G115 -- bounded by maxWholeCredits
	if neg {
		v = -v
	}
	return Amount(v), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ============================================================================
// WalletAddress
// ============================================================================

// WalletAddress identifies a credit wallet.
type WalletAddress string

// Validate reports whether the address is plausibly well formed: 20 to 64
// ASCII letters or digits.
func (w WalletAddress) Validate() error {
	if len(w) < 20 || len(w) > 64 {
		return fmt.Errorf("wallet address must be 20-64 characters, got %d", len(w))
	}
	for _, r := range w {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit {
			return fmt.Errorf("wallet address contains invalid character %q", r)
		}
	}
	return nil
}

// ============================================================================
// Relationship
// ============================================================================

// Relationship is the kind of connection requested between two users.
type Relationship string

const (
	RelationshipFriend       Relationship = "friend"
	RelationshipAcquaintance Relationship = "acquaintance"
	RelationshipFamily       Relationship = "family"
	RelationshipPartner      Relationship = "partner"
	RelationshipWork         Relationship = "work"
)

// ParseRelationship parses the wire form of a relationship.
func ParseRelationship(s string) (Relationship, error) {
	r := Relationship(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RelationshipFriend, RelationshipAcquaintance, RelationshipFamily,
		RelationshipPartner, RelationshipWork:
		return r, nil
	}
	return "", fmt.Errorf("unknown relationship %q", s)
}

func (r *Relationship) UnmarshalText(text []byte) error {
	parsed, err := ParseRelationship(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ============================================================================
// Confirmable attributes
// ============================================================================

// Confirmable is a user attribute that the API verifies separately, such
// as an email address or a phone number.
type Confirmable[T any] struct {
	Value     T
	Confirmed bool
}

// Address is a postal address.
type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}
