package service_test

import (
	"os"
	"path/filepath"
	"testing"

	service "github.com/okian/paddock/internal/app"
	"github.com/okian/paddock/pkg/logger"
)

const racesCSV = `Year,Grand Prix,Date,Winner,Team
1950,British,13 May 1950,Nino Farina,Alfa Romeo
1950,Monaco,21 May 1950,Juan Manuel Fangio,Alfa Romeo
1950,Indianapolis 500 Mile Race,30 May 1950,Johnnie Parsons,Kurtis Kraft
1951,Swiss,27 May 1951,Juan Manuel Fangio,Alfa Romeo
1953,Argentine,18 Jan 1953,Alberto Ascari,Ferrari
1954,French,04 Jul 1954,Juan Manuel Fangio,Mercedes
1955,Monaco,22 May 1955,Maurice Trintignant,Ferrari
1955,Italian,11 Sep 1955,Juan Manuel Fangio,Mercedes
1956,Italian,02 Sep 1956,Stirling Moss,Maserati
1958,Moroccan,19 Oct 1958,Stirling Moss,Vanwall
1959,Portuguese,sometime in August,Stirling Moss,Cooper
`

// writeRaces stores the fixture table and returns its path.
func writeRaces(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "races.csv")
	if err := os.WriteFile(path, []byte(racesCSV), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// newService builds a service over the fixture table.
func newService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	base := []service.Option{
		service.WithLogger(logger.Nop()),
		service.WithDataPath(writeRaces(t)),
	}
	return service.New(append(base, opts...)...)
}
