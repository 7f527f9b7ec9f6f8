package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stocklens-api/pkg/config"
)

// Parámetros del pool. MaxConns holgado para las consultas en paralelo del
// dashboard y los reportes; MinConns bajo para entornos de desarrollo.
const (
	poolMaxConns        = 25
	poolMinConns        = 2
	poolMaxConnLifetime = time.Hour
	poolMaxConnIdle     = 30 * time.Minute
	poolHealthCheck     = time.Minute
)

// NewPool crea el pool de conexiones PostgreSQL. Con DATABASE_URL definido se
// usa tal cual; si no, el DSN se arma desde DB_HOST, DB_PORT, etc.
//
// El dial fuerza IPv4 cuando el hostname lo permite: en contenedores sin IPv6
// un host que resuelve solo AAAA deja el pool colgado en el primer Connect.
// Cada conexión registra el codec NUMERIC ↔ shopspring/decimal, de modo que los
// repositorios escanean montos directamente a decimal.Decimal.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = cfg.DSN()
	} else {
		dsn = rewriteHostToIPv4(dsn)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsear DSN: %w", err)
	}

	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolMaxConnLifetime
	poolConfig.MaxConnIdleTime = poolMaxConnIdle
	poolConfig.HealthCheckPeriod = poolHealthCheck
	poolConfig.ConnConfig.DialFunc = dialIPv4First
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping a la base de datos: %w", err)
	}
	return pool, nil
}

// dialIPv4First intenta el dial sobre la dirección IPv4 del host; si el host no
// tiene registro A cae al dial normal y deja decidir al resolver del sistema.
func dialIPv4First(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	if ipv4, err := resolveIPv4(ctx, host); err == nil {
		return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
	}
	return dialer.DialContext(ctx, network, addr)
}

// resolveIPv4 devuelve la primera dirección IPv4 del host, o error si solo
// resuelve a IPv6.
func resolveIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("%s es una dirección IPv6", host)
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	if len(ips) == 0 {
		return "", fmt.Errorf("%s no tiene registro A", host)
	}
	return ips[0].String(), nil
}

// rewriteHostToIPv4 sustituye el hostname de la URL por su IPv4 si existe; si
// no se puede resolver, devuelve la URL intacta.
func rewriteHostToIPv4(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	ipv4, err := resolveIPv4(context.Background(), u.Hostname())
	if err != nil {
		return databaseURL
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}
