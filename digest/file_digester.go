package digest

import (
	"io"
	"os"

	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// DefaultWindowSize bounds how much file content sits in memory at a
// time while digesting.
const DefaultWindowSize = 64 * 1024

const fileDigesterLogTag = "FileDigester"

// FileDigester computes digests of file contents without loading whole
// files into memory.
type FileDigester interface {
	DigestFile(path string, algorithm Algorithm) (Digest, error)
}

type fileDigester struct {
	fs          boshsys.FileSystem
	windowSize  int
	timeService clock.Clock
	logger      boshlog.Logger
}

func NewFileDigester(fs boshsys.FileSystem, timeService clock.Clock, logger boshlog.Logger) FileDigester {
	return fileDigester{
		fs:          fs,
		windowSize:  DefaultWindowSize,
		timeService: timeService,
		logger:      logger,
	}
}

func (d fileDigester) DigestFile(path string, algorithm Algorithm) (Digest, error) {
	stat, err := d.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Digest{}, bosherr.Errorf("File '%s' does not exist", path)
		}
		return Digest{}, bosherr.WrapErrorf(err, "Checking file '%s'", path)
	}

	if stat.IsDir() {
		return Digest{}, bosherr.Errorf("Path '%s' is a directory", path)
	}

	file, err := d.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return Digest{}, bosherr.WrapErrorf(err, "Opening file '%s'", path)
	}

	defer file.Close()

	startedAt := d.timeService.Now()

	fileDigest, err := DigestReader(file, stat.Size(), algorithm, d.windowSize)
	if err != nil {
		return Digest{}, bosherr.WrapErrorf(err, "Digesting file '%s'", path)
	}

	d.logger.Debug(fileDigesterLogTag, "Digested '%s' with %s in %s", path, algorithm, d.timeService.Since(startedAt))

	return fileDigest, nil
}

// DigestReader streams size bytes from r into a fresh accumulator for
// algorithm, reading at most windowSize bytes at a time. The result
// depends only on the content, never on windowSize. Content beyond
// size is left unconsumed; content shorter than size is an error
// rather than a digest of whatever was there.
func DigestReader(r io.Reader, size int64, algorithm Algorithm, windowSize int) (Digest, error) {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	hash := algorithm.NewHash()

	written, err := io.CopyBuffer(hash, io.LimitReader(r, size), make([]byte, windowSize))
	if err != nil {
		return Digest{}, bosherr.WrapError(err, "Reading content")
	}

	if written != size {
		return Digest{}, bosherr.Errorf("Content shrank while digesting: read %d bytes of expected %d", written, size)
	}

	return NewDigest(algorithm, hash.Sum(nil)), nil
}
