package iofs

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gnames/ncbitax/pkg/config"
)

// Credentials of the tag store.
type Credentials struct {
	User     string
	Password string
}

// ReadCredentials reads the credentials file: a username on the first
// line and a password on the second one. It returns false if the file
// does not exist.
func ReadCredentials(homeDir string) (Credentials, bool, error) {
	var res Credentials
	path := config.CredentialsFilePath(homeDir)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return res, false, nil
	}
	if err != nil {
		return res, false, ReadFileError(path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() && len(lines) < 2 {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err = sc.Err(); err != nil {
		return res, false, ReadFileError(path, err)
	}
	if len(lines) < 2 || lines[0] == "" {
		return res, false, CredentialsError(path, len(lines))
	}

	res.User, res.Password = lines[0], lines[1]
	return res, true, nil
}

// Options converts credentials to configuration options. The username
// becomes the tag namespace only if no namespace is configured.
func (c Credentials) Options(cfg *config.Config) []config.Option {
	res := []config.Option{
		config.OptStoreUser(c.User),
	}
	if c.Password != "" {
		res = append(res, config.OptStorePassword(c.Password))
	}
	if cfg.Store.Namespace == "" {
		res = append(res, config.OptStoreNamespace(c.User))
	}
	return res
}
