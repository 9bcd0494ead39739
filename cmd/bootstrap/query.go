package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"doctor-directory/internal/service"
)

// Query loads the doctor list synchronously and prints the doctors matching
// the given filter state as a table.
func (app *App) Query(ctx context.Context, w io.Writer, query url.Values) error {
	if err := app.Loader.Load(ctx); err != nil {
		// Same contract as the page: an unreachable source is an empty list.
		app.Log.Warnf("Doctor list unavailable: %+v", err)
	}

	store := service.NewQueryStateStore(query)
	listing, err := app.Listing.ListDoctors(ctx, store)
	if err != nil {
		return fmt.Errorf("list doctors: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMODE\tSPECIALITY\tEXPERIENCE\tFEES")
	for _, d := range listing.Doctors {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", d.Name, d.Mode, strings.Join(d.Speciality, ", "), d.Experience, d.Fees.String())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d doctors (?%s)\n", listing.Total, store.Encode())
	return nil
}
