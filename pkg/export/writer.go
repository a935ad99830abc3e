package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ghexport/ghexport/pkg/github"
)

var rowsWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ghexport_rows_written_total",
	Help: "Total repository rows written to the output file",
})

// Header is the fixed, ordered output column set. Changing it breaks
// downstream consumers.
var Header = []string{
	"owner_login",
	"full_name",
	"created_at",
	"stargazers_count",
	"watchers_count",
	"language",
	"has_projects",
	"has_wiki",
	"license_key",
}

// WriteRepositories writes the header and one row per repository to the given
// path, replacing any existing file.
func WriteRepositories(path string, repos []github.Repository) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := writeRepositories(file, repos); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	rowsWrittenTotal.Add(float64(len(repos)))
	return nil
}

func writeRepositories(w io.Writer, repos []github.Repository) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range repos {
		if err := writer.Write(row(&repos[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

// row renders one repository in Header order. Booleans become the literal
// strings "true"/"false"; null language and absent license become "".
func row(repo *github.Repository) []string {
	return []string{
		repo.Owner.Login,
		repo.FullName,
		repo.CreatedAt,
		strconv.Itoa(repo.StargazersCount),
		strconv.Itoa(repo.WatchersCount),
		repo.LanguageOrEmpty(),
		strconv.FormatBool(repo.HasProjects),
		strconv.FormatBool(repo.HasWiki),
		repo.LicenseKeyOrEmpty(),
	}
}
