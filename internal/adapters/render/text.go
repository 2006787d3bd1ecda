package render

import (
	"fmt"
	"freight-dispatch-service/internal/domain"
	"io"
	"strings"
)

// Line formats one event as
// "W=<seconds>, T=<carrier>, N1=<from>, P1=[<loaded>], N2=<to>, P2=[<unloaded>]".
func Line(e domain.Event) string {
	return fmt.Sprintf("W=%d, T=%s, N1=%s, P1=[%s], N2=%s, P2=[%s]",
		e.Timestamp, e.CarrierID, e.From, strings.Join(e.Loaded, ","), e.To, strings.Join(e.Unloaded, ","))
}

// WriteEvents writes one line per event in log order.
func WriteEvents(w io.Writer, events []domain.Event) error {
	for _, e := range events {
		if _, err := fmt.Fprintln(w, Line(e)); err != nil {
			return fmt.Errorf("write events: %w", err)
		}
	}
	return nil
}

// WriteStranded writes a short report of undelivered packages.
func WriteStranded(w io.Writer, stranded []domain.StrandedPackage) error {
	if len(stranded) == 0 {
		_, err := fmt.Fprintln(w, "all packages delivered")
		return err
	}
	for _, s := range stranded {
		if _, err := fmt.Fprintf(w, "stranded package=%s state=%s location=%s\n", s.PackageID, s.State, s.Location); err != nil {
			return fmt.Errorf("write stranded: %w", err)
		}
	}
	return nil
}
