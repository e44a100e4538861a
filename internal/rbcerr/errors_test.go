package rbcerr

import "testing"

func TestExitCodeMapping(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Error("ExitCode(nil) should be 0")
	}
	if ExitCode(Argument("bad input")) != 2 {
		t.Error("ExitCode of any error should be 2")
	}
}

func TestErrorMessageFormatting(t *testing.T) {
	err := Argumentf("mode %q unknown", "xyz")
	want := `rbc_validator: [argument] mode "xyz" unknown`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorWithDetails(t *testing.T) {
	err := Crypto("derive failed", "aes: invalid key size")
	want := "rbc_validator: [crypto] derive failed: aes: invalid key size"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAs(t *testing.T) {
	err := Internal("bug")
	e, ok := As(err)
	if !ok {
		t.Fatal("As should report true for an *Error")
	}
	if e.Kind != InternalError {
		t.Errorf("Kind = %v, want InternalError", e.Kind)
	}
}
