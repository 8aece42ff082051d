package identity

import (
	"errors"
	"regexp"
	"testing"
)

var uuidV4Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNormalizeUserIDDeterministic(t *testing.T) {
	first, err := NormalizeUserID("user_abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NormalizeUserID("user_abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("same input produced different ids: %s vs %s", first, second)
	}
}

func TestNormalizeUserIDShape(t *testing.T) {
	id, err := NormalizeUserID("user_2NNEqL2nrIRdJ194ndJqAHwEfxC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !uuidV4Pattern.MatchString(id) {
		t.Errorf("derived id %q does not match the UUID v4 shape", id)
	}
}

func TestNormalizeUserIDDistinctInputs(t *testing.T) {
	a, _ := NormalizeUserID("user_abc123")
	b, _ := NormalizeUserID("user_abc124")
	if a == b {
		t.Errorf("different ids collided: %s", a)
	}
}

func TestNormalizeUserIDRejectsUnknownFormat(t *testing.T) {
	for _, input := range []string{"", "abc123", "usr_abc", "user_"} {
		if _, err := NormalizeUserID(input); !errors.Is(err, ErrUnrecognizedID) {
			t.Errorf("expected ErrUnrecognizedID for %q, got %v", input, err)
		}
	}
}
