/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination mocks/storage_mock.go -source storage.go -package mocks

package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"d7y.io/studio/internal/dferrors"
	"d7y.io/studio/pkg/types"
)

const (
	// CSVFileExt is extension of csv datasets.
	CSVFileExt = "csv"

	// DefaultFileEncoding is the encoding of datasets without one.
	DefaultFileEncoding = "utf-8"

	// PreviewRows is the number of rows in a dataset preview.
	PreviewRows = 5
)

// ErrInvalidExtension is returned for uploads that are not datasets.
var ErrInvalidExtension = dferrors.New(dferrors.CodeValidation, "Please upload a csv file.")

// Storage is the interface used for storage.
type Storage interface {
	// CheckExtension returns ErrInvalidExtension when filename is not an accepted dataset.
	CheckExtension(filename string) error

	// SaveDataset copies the dataset of a project and returns its stored path.
	SaveDataset(projectID uint, filename string, r io.Reader) (string, error)

	// OpenDataset opens a stored dataset for read.
	OpenDataset(path string) (io.ReadCloser, error)

	// PreviewDataset reads the header and the first rows of a csv dataset.
	PreviewDataset(path, encoding string) (*Preview, error)

	// RemoveDataset removes a stored dataset.
	RemoveDataset(path string) error
}

type storage struct {
	baseDir    string
	extensions map[string]struct{}
}

// New returns a new Storage instance.
func New(baseDir string, extensions []string) (Storage, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, err
	}

	s := &storage{
		baseDir:    baseDir,
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, ext := range extensions {
		s.extensions[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	return s, nil
}

// CheckExtension returns ErrInvalidExtension when filename is not an accepted dataset.
func (s *storage) CheckExtension(filename string) error {
	if _, ok := s.extensions[Extension(filename)]; !ok {
		return ErrInvalidExtension
	}

	return nil
}

// SaveDataset copies the dataset of a project and returns its stored path.
func (s *storage) SaveDataset(projectID uint, filename string, r io.Reader) (string, error) {
	if err := s.CheckExtension(filename); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, fmt.Sprint(projectID))
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.%s", uuid.NewString(), Extension(filename)))
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		if err := os.Remove(path); err != nil {
			return "", err
		}

		return "", err
	}

	return path, nil
}

// OpenDataset opens a stored dataset for read.
func (s *storage) OpenDataset(path string) (io.ReadCloser, error) {
	if err := s.contains(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, dferrors.Newf(dferrors.CodeNotFound, "dataset %s not found", filepath.Base(path))
		}

		return nil, err
	}

	return file, nil
}

// PreviewDataset reads the header and the first rows of a csv dataset.
func (s *storage) PreviewDataset(path, encoding string) (*Preview, error) {
	if Extension(path) != CSVFileExt {
		return nil, dferrors.Newf(dferrors.CodeValidation, "preview of %s files is not supported", Extension(path))
	}

	file, err := s.OpenDataset(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r, err := NewDecodedReader(file, encoding)
	if err != nil {
		return nil, err
	}

	return ReadPreview(r, PreviewRows)
}

// RemoveDataset removes a stored dataset.
func (s *storage) RemoveDataset(path string) error {
	if err := s.contains(path); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (s *storage) contains(path string) error {
	rel, err := filepath.Rel(s.baseDir, filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return dferrors.Newf(dferrors.CodeValidation, "dataset %s is outside of data dir", path)
	}

	return nil
}

// Extension returns the lower case extension of filename without dot.
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// NewDecodedReader converts r from encoding to utf-8.
func NewDecodedReader(r io.Reader, encoding string) (io.Reader, error) {
	if encoding == "" {
		encoding = DefaultFileEncoding
	}

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, dferrors.Newf(dferrors.CodeValidation, "unsupported file encoding %s", encoding)
	}

	return transform.NewReader(r, enc.NewDecoder()), nil
}

// WriteSummary writes the EDA summary rows as csv.
func WriteSummary(w io.Writer, rows []types.SummaryRow) error {
	return gocsv.Marshal(rows, w)
}
