package utils

import "golang.org/x/crypto/bcrypt"

// hashCost mengikuti default library. bcrypt menyimpan cost di dalam
// hash yang dihasilkan, jadi menaikkan nilai ini di kemudian hari tidak
// membuat password lama gagal diverifikasi.
const hashCost = bcrypt.DefaultCost

// HashPassword menghasilkan hash bcrypt untuk password yang baru disetel.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword membandingkan hash tersimpan dengan kandidat password.
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
