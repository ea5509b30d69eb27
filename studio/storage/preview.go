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

package storage

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
)

// Preview is the head of a dataset.
type Preview struct {
	Head        []string        `json:"head"`
	PreviewData PreviewData     `json:"previewData"`
	Profiles    []ColumnProfile `json:"profiles,omitempty"`
}

type PreviewData struct {
	DataFrame []map[string]string `json:"dataFrame"`
}

// ColumnProfile summarizes the preview values of a column.
type ColumnProfile struct {
	Name    string  `json:"name"`
	Numeric bool    `json:"numeric"`
	Missing int     `json:"missing"`
	Mean    float64 `json:"mean,omitempty"`
	Median  float64 `json:"median,omitempty"`
	StdDev  float64 `json:"stdDev,omitempty"`
}

// ReadPreview reads the header and at most rows records of a csv stream.
// Short records are padded with empty strings.
func ReadPreview(r io.Reader, rows int) (*Preview, error) {
	reader := gocsv.LazyCSVReader(r)

	head, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("dataset is empty")
		}

		return nil, err
	}

	for i := range head {
		head[i] = strings.TrimSpace(strings.TrimPrefix(head[i], "\ufeff"))
	}

	preview := &Preview{
		Head:        head,
		PreviewData: PreviewData{DataFrame: make([]map[string]string, 0, rows)},
	}

	for len(preview.PreviewData.DataFrame) < rows {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil && !errors.Is(err, csv.ErrFieldCount) {
			return nil, err
		}

		row := make(map[string]string, len(head))
		for i, col := range head {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
				continue
			}

			row[col] = ""
		}
		preview.PreviewData.DataFrame = append(preview.PreviewData.DataFrame, row)
	}

	preview.Profiles = profile(head, preview.PreviewData.DataFrame)
	return preview, nil
}

func profile(head []string, dataFrame []map[string]string) []ColumnProfile {
	profiles := make([]ColumnProfile, 0, len(head))
	for _, col := range head {
		p := ColumnProfile{Name: col, Numeric: true}

		var data stats.Float64Data
		for _, row := range dataFrame {
			v := row[col]
			if v == "" {
				p.Missing++
				continue
			}

			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				p.Numeric = false
				continue
			}

			data = append(data, f)
		}

		if !p.Numeric || data.Len() == 0 {
			p.Numeric = false
			profiles = append(profiles, p)
			continue
		}

		p.Mean, _ = data.Mean()
		p.Median, _ = data.Median()
		p.StdDev, _ = data.StandardDeviation()
		profiles = append(profiles, p)
	}

	return profiles
}
