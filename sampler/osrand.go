package sampler

import (
	"crypto/rand"
	"encoding/binary"

	"pqbrake/oprferr"
)

// osSource reads entropy from crypto/rand. A read failure is surfaced as
// *oprferr.RandomnessError and is never retried against a weaker source.
type osSource struct{}

// OSSource returns the production Source, backed by the OS CSPRNG.
func OSSource() Source { return osSource{} }

func (osSource) ReadUint64() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, &oprferr.RandomnessError{Err: err}
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
