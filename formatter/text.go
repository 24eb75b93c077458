package formatter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/stat"
)

// FormatText renders a response as a single report line without a trailing newline
func FormatText(res stat.Response) string {
	name := res.Request.Name
	switch res.Request.Kind {
	case stat.KindBus:
		if !res.Found {
			return "Bus " + name + ": not found"
		}
		s := res.Stat
		return fmt.Sprintf("Bus %s: %d stops on route, %d unique stops, %d route length, %s curvature",
			name, s.TotalStops, s.UniqueStops, s.RouteLength, formatCurvature(s.Curvature))
	case stat.KindStop:
		if !res.Found {
			return "Stop " + name + ": not found"
		}
		if len(res.Buses) == 0 {
			return "Stop " + name + ": no buses"
		}
		return "Stop " + name + ": buses " + strings.Join(res.Buses, " ")
	}
	return ""
}

// WriteText writes one line per response
func WriteText(w io.Writer, responses []stat.Response) error {
	bw := bufio.NewWriter(w)
	for _, res := range responses {
		if _, err := bw.WriteString(FormatText(res) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// formatCurvature prints six significant digits in %g style
func formatCurvature(c float64) string {
	return strconv.FormatFloat(c, 'g', 6, 64)
}
