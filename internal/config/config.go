package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Load when MAPS_API_KEY is not set.
var ErrMissingAPIKey = errors.New("config: MAPS_API_KEY is not set")

// ServiceConfig holds all configuration for the truck route service.
type ServiceConfig struct {
	Port         string
	AppEnv       string
	RoutesConfig RoutesConfig
	DBConfig     DatabaseConfig
	KafkaConfig  KafkaConfig
}

// RoutesConfig holds the directions-service settings.
type RoutesConfig struct {
	APIKey      string
	BaseURL     string
	FieldMask   string
	EncodeQuery bool
	Request     route.RequestOptions
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the connection string understood by the gorm postgres driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// KafkaConfig holds broker settings.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// Load reads configuration from environment variables, after loading a .env file from the
// working directory if one exists. It fails when no Routes API key is configured.
func Load() (*ServiceConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	vehicle := route.DefaultVehicleInfo()
	defaults := map[string]any{
		"SERVICE_PORT":            ":8085",
		"APP_ENV":                 "development",
		"ROUTES_BASE_URL":         "https://routes.googleapis.com",
		"ROUTES_FIELD_MASK":       "routes.routeToken,routes.travelAdvisory",
		"ROUTES_ENCODE_QUERY":     false,
		"ROUTES_LANGUAGE_CODE":    route.DefaultLanguageCode,
		"ROUTES_UNITS":            string(route.UnitsImperial),
		"TRUCK_AXLE_COUNT":        vehicle.TotalAxleCount,
		"TRUCK_HEIGHT_MM":         vehicle.TotalHeightMm,
		"TRUCK_LENGTH_MM":         vehicle.TotalLengthMm,
		"TRUCK_WIDTH_MM":          vehicle.TotalWidthMm,
		"TRUCK_WEIGHT_KG":         vehicle.TotalWeightKg,
		"TRUCK_TRAILER_LENGTH_MM": vehicle.TrailerInfo.LengthMm,
		"TRUCK_AVOID_TOLLS":       false,
		"TRUCK_AVOID_HIGHWAYS":    false,
		"TRUCK_AVOID_FERRIES":     false,
		"DB_HOST":                 "localhost",
		"DB_PORT":                 "5432",
		"DB_USER":                 "postgres",
		"DB_PASSWORD":             "postgres",
		"DB_NAME":                 "truckroute",
		"DB_SSLMODE":              "disable",
		"KAFKA_BROKERS":           "localhost:9092",
		"KAFKA_GROUP_PREFIX":      "",
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	return v
}

// FromViper builds a ServiceConfig from an already-populated viper instance.
func FromViper(v *viper.Viper) (*ServiceConfig, error) {
	apiKey := strings.TrimSpace(v.GetString("MAPS_API_KEY"))
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	opts := route.DefaultRequestOptions()
	opts.LanguageCode = v.GetString("ROUTES_LANGUAGE_CODE")
	opts.Units = route.Units(strings.ToUpper(v.GetString("ROUTES_UNITS")))
	if opts.Units != route.UnitsImperial && opts.Units != route.UnitsMetric {
		return nil, fmt.Errorf("config: invalid ROUTES_UNITS %q", opts.Units)
	}

	var err error
	vehicle := &opts.RouteModifiers.VehicleInfo
	dimensions := []struct {
		key string
		dst *int
	}{
		{"TRUCK_AXLE_COUNT", &vehicle.TotalAxleCount},
		{"TRUCK_HEIGHT_MM", &vehicle.TotalHeightMm},
		{"TRUCK_LENGTH_MM", &vehicle.TotalLengthMm},
		{"TRUCK_WIDTH_MM", &vehicle.TotalWidthMm},
		{"TRUCK_WEIGHT_KG", &vehicle.TotalWeightKg},
		{"TRUCK_TRAILER_LENGTH_MM", &vehicle.TrailerInfo.LengthMm},
	}
	for _, d := range dimensions {
		if *d.dst, err = positiveInt(v, d.key); err != nil {
			return nil, err
		}
	}

	modifiers := &opts.RouteModifiers
	flags := []struct {
		key string
		dst *bool
	}{
		{"TRUCK_AVOID_TOLLS", &modifiers.AvoidTolls},
		{"TRUCK_AVOID_HIGHWAYS", &modifiers.AvoidHighways},
		{"TRUCK_AVOID_FERRIES", &modifiers.AvoidFerries},
	}
	for _, f := range flags {
		if *f.dst, err = boolValue(v, f.key); err != nil {
			return nil, err
		}
	}

	encodeQuery, err := boolValue(v, "ROUTES_ENCODE_QUERY")
	if err != nil {
		return nil, err
	}

	return &ServiceConfig{
		Port:   v.GetString("SERVICE_PORT"),
		AppEnv: v.GetString("APP_ENV"),
		RoutesConfig: RoutesConfig{
			APIKey:      apiKey,
			BaseURL:     v.GetString("ROUTES_BASE_URL"),
			FieldMask:   v.GetString("ROUTES_FIELD_MASK"),
			EncodeQuery: encodeQuery,
			Request:     opts,
		},
		DBConfig: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		KafkaConfig: KafkaConfig{
			Brokers:     splitList(v.GetString("KAFKA_BROKERS")),
			GroupPrefix: v.GetString("KAFKA_GROUP_PREFIX"),
		},
	}, nil
}

// positiveInt reads key as an integer greater than zero.
func positiveInt(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v.GetString(key), err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("config: invalid %s %d: must be positive", key, n)
	}
	return n, nil
}

func boolValue(v *viper.Viper, key string) (bool, error) {
	b, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return false, fmt.Errorf("config: invalid %s %q: %w", key, v.GetString(key), err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
