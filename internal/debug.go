package internal

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/earthboundkid/versioninfo/v2"
)

func ShowVersion() {
	log.Printf("Version: %s\n", versioninfo.Short())
}

// Diagnostics logs what usually explains a failed run: which formats can be
// decoded, what the input looks like on disk, and whether the directory the
// output goes to accepts new files.
func Diagnostics(inputPath string, formats []string) {
	log.Printf("Decoders: %s", strings.Join(formats, ", "))

	info, err := os.Stat(inputPath)
	switch {
	case err != nil:
		log.Printf("Input %s: %v", inputPath, err)
	case info.IsDir():
		log.Printf("Input %s is a directory", inputPath)
	default:
		log.Printf("Input %s: %d bytes, mode %s", inputPath, info.Size(), info.Mode())
	}

	dir := filepath.Dir(inputPath)
	if err := CheckWritable(dir); err != nil {
		log.Printf("Output directory %s is not writable: %v", dir, err)
	} else {
		log.Printf("Output directory %s is writable", dir)
	}
}

// CheckWritable creates and removes a scratch file in dir.
func CheckWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".ortho-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Remove(name)
}

// DebugEnabled reports whether ORTHO_DEBUG is set to a true value.
func DebugEnabled() bool {
	enabled, err := strconv.ParseBool(os.Getenv("ORTHO_DEBUG"))
	return err == nil && enabled
}
