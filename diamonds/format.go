package diamonds

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const hyperParametersHeader = `
    Hyper parameters used for setting up uniform priors.
    Each line corresponds to a different free parameter (coordinate).
    Column #1: Minima (lower boundaries)
    Column #2: Maxima (upper boundaries)
    `

// writeHeader writes header with every line prefixed by "# ", as
// numpy.savetxt does.
func writeHeader(buf *bytes.Buffer, header string) {
	for _, line := range strings.Split(header, "\n") {
		buf.WriteString("# ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

func renderBoundaries(pairs [][2]float64) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, hyperParametersHeader)
	for _, p := range pairs {
		fmt.Fprintf(&buf, "%.3f %.3f\n", p[0], p[1])
	}
	return buf.Bytes()
}

func renderSamplerConfig(c SamplerConfig) []byte {
	var buf bytes.Buffer
	for _, v := range c.Values() {
		fmt.Fprintf(&buf, "%.1f\n", v)
	}
	return buf.Bytes()
}

func renderClustering(c ClusteringConfig) []byte {
	return []byte(fmt.Sprintf("%d\n%d\n", c.MinClusters, c.MaxClusters))
}

// formatFloat renders f as the shortest decimal that parses back to f,
// switching to exponent notation outside [1e-4, 1e16) and keeping a ".0"
// on integral values: 283.2116656017908, 280.0, 1e-05.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
