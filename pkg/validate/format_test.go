package validate

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{
		"hr@company.ae",
		"first.last@sub.example.com",
		"  padded@example.com  ",
	}
	for _, raw := range valid {
		if ok, _ := Email(raw); !ok {
			t.Fatalf("Email(%q) = false", raw)
		}
	}

	invalid := []string{"", "plainaddress", "@example.com", "name@"}
	for _, raw := range invalid {
		if ok, _ := Email(raw); ok {
			t.Fatalf("Email(%q) = true", raw)
		}
	}
}

func TestPhone(t *testing.T) {
	valid := []string{
		"+971 50 123 4567",
		"+971501234567",
		"+971 4 123 4567",
		"+9715 123 4567",
	}
	for _, raw := range valid {
		if ok, _ := Phone(raw); !ok {
			t.Fatalf("Phone(%q) = false", raw)
		}
	}

	invalid := []string{
		"",
		"0501234567",
		"+44 20 7946 0958",
		"+971 501 234 56789",
		"971 50 123 4567",
	}
	for _, raw := range invalid {
		if ok, _ := Phone(raw); ok {
			t.Fatalf("Phone(%q) = true", raw)
		}
	}
}

func TestNationalID(t *testing.T) {
	valid := []string{
		"784-1985-7654321-2", // Emirates ID
		"N1234567",           // passport
		"AB123456",
		"784123",
	}
	for _, raw := range valid {
		if ok, _ := NationalID(raw); !ok {
			t.Fatalf("NationalID(%q) = false", raw)
		}
	}

	invalid := []string{
		"",
		"784-12-3",
		"784-1985-7654321",   // missing check digit
		"123-1985-7654321-2", // wrong prefix
		"AB12",               // too short for a passport
		"AB12345678901",      // too long
	}
	for _, raw := range invalid {
		if ok, _ := NationalID(raw); ok {
			t.Fatalf("NationalID(%q) = true", raw)
		}
	}
}

func TestFormatPredicateUnknownTag(t *testing.T) {
	if formatPredicate("iban") != nil {
		t.Fatal("unknown format tag resolved a predicate")
	}
}
