package config

// Supported catalog backends.
const (
	DriverREST     = "rest"     // PostgREST endpoint of the hosted database
	DriverPostgres = "postgres" // direct SQL connection
	DriverSQLite   = "sqlite"   // local file, used for development
)

// DB holds the database configuration settings.
// Host, Port, User, Password, Name and Extras apply to the postgres driver only.
type DB struct {
	Driver   string
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Path     string // sqlite file
	Seed     bool   // migrate and seed sample catalog data (sqlite only)
}
