package photodis

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/uhecr/internal/nucleus"
)

// Mpc is one megaparsec in metres, the reference length unit of the
// data sources. Rates are converted to 1/m on load.
const Mpc = 3.0856775807e22

// RateSamples is the fixed number of rate samples per channel,
// covering log10(Lorentz factor) from LgMin to LgMax.
const (
	RateSamples = 200
	LgMin       = 6.0
	LgMax       = 14.0
)

// Lorentz-factor bounds equivalent to the open lg interval (6, 14).
const (
	gammaMin = 1e6
	gammaMax = 1e14
)

// Channel is one disintegration mode of one nuclide: the wire channel
// code, its decoded emission counts, and the tabulated rate in 1/m.
type Channel struct {
	Code     int
	Emission nucleus.Emission
	Rate     []float64
}

type tableKey struct {
	z, n int
}

// RateTable maps (Z, N) to the ordered disintegration channels of that
// nuclide. Nuclides absent from the data source have no entry, which
// reads back as an empty channel list: no disintegration modeled.
// The table is never mutated after load.
type RateTable struct {
	channels map[tableKey][]Channel
}

// Channels returns the disintegration channels for charge number z and
// neutron number n, in data-source order.
func (t *RateTable) Channels(z, n int) []Channel {
	return t.channels[tableKey{z, n}]
}

// Nuclides returns the number of distinct (Z, N) entries loaded.
func (t *RateTable) Nuclides() int { return len(t.channels) }

// LoadRateTable reads a rate table from the named data source.
func LoadRateTable(path string) (*RateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("photodis: open rate table: %w", err)
	}
	defer f.Close()
	return ReadRateTable(f)
}

// ReadRateTable parses rate-table records from r. Each non-comment
// line holds `Z A channel r1 ... r200` with rates in 1/Mpc, converted
// to 1/m on load. A malformed line fails the whole load; a partially
// read table is never returned.
func ReadRateTable(r io.Reader) (*RateTable, error) {
	table := &RateTable{channels: make(map[tableKey][]Channel)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3+RateSamples {
			return nil, fmt.Errorf("photodis: line %d: expected %d fields, got %d",
				lineNo, 3+RateSamples, len(fields))
		}

		z, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("photodis: line %d: bad charge number: %w", lineNo, err)
		}
		a, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("photodis: line %d: bad mass number: %w", lineNo, err)
		}
		code, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("photodis: line %d: bad channel code: %w", lineNo, err)
		}
		if z < 0 || a < z || code < 0 {
			return nil, fmt.Errorf("photodis: line %d: invalid record Z=%d A=%d channel=%d",
				lineNo, z, a, code)
		}

		ch := Channel{
			Code:     code,
			Emission: nucleus.DecodeChannel(code),
			Rate:     make([]float64, RateSamples),
		}
		for i, field := range fields[3:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("photodis: line %d: bad rate sample %d: %w", lineNo, i+1, err)
			}
			ch.Rate[i] = v / Mpc
		}

		key := tableKey{z: z, n: a - z}
		table.channels[key] = append(table.channels[key], ch)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("photodis: read rate table: %w", err)
	}

	return table, nil
}
