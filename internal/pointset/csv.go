package pointset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// decodeCSV reads "lat,lon[,name]" records. A first row naming the lat and
// lon columns is treated as a header. Lines starting with '#' are comments.
func decodeCSV(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var points []Point
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		if len(rec) < 2 {
			return nil, fmt.Errorf("csv line %d: want lat,lon[,name], got %d fields", lineOf(cr, row), len(rec))
		}

		lat, errLat := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errLat != nil || errLon != nil {
			if row == 0 && errLat != nil && errLon != nil && isHeader(rec) {
				continue
			}
			return nil, fmt.Errorf("csv line %d: latitude and longitude must be numeric", lineOf(cr, row))
		}

		p := Point{Lat: lat, Lon: lon}
		if len(rec) > 2 {
			p.Name = strings.TrimSpace(rec[2])
		}
		points = append(points, p)
	}

	return points, nil
}

func isHeader(rec []string) bool {
	lat := strings.ToLower(strings.TrimSpace(rec[0]))
	lon := strings.ToLower(strings.TrimSpace(rec[1]))

	return strings.HasPrefix(lat, "lat") && (strings.HasPrefix(lon, "lon") || strings.HasPrefix(lon, "lng"))
}

func lineOf(cr *csv.Reader, row int) int {
	if line, _ := cr.FieldPos(0); line > 0 {
		return line
	}

	return row + 1
}

func encodeCSV(w io.Writer, points []Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"lat", "lon", "name"}); err != nil {
		return err
	}

	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p.Lat, 'f', -1, 64),
			strconv.FormatFloat(p.Lon, 'f', -1, 64),
			p.Name,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
