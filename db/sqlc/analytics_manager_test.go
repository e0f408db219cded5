package sqlc

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sqlc-dev/pqtype"
)

func newMockedManager(t *testing.T) (*AnalyticsManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	return NewDbManager(New(db)).Analytics, mock
}

func testServerInet(t *testing.T) pqtype.Inet {
	t.Helper()
	_, ipnet, err := net.ParseCIDR("192.0.2.1/24")
	if err != nil {
		t.Fatal(err)
	}
	return pqtype.Inet{IPNet: *ipnet, Valid: true}
}

func TestAnalyticsIncrementCounts(t *testing.T) {
	manager, mock := newMockedManager(t)
	serverInet := testServerInet(t)

	tests := []struct {
		name   string
		column string
		call   func(context.Context, pqtype.Inet) error
	}{
		{name: "matches hosted", column: "matches_hosted", call: manager.IncrementMatchesHostedCount},
		{name: "agent wins", column: "agent_wins", call: manager.IncrementAgentWinsCount},
		{name: "challenger wins", column: "challenger_wins", call: manager.IncrementChallengerWinsCount},
		{name: "forfeits", column: "forfeits", call: manager.IncrementForfeitsCount},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mock.ExpectExec(fmt.Sprintf(`INSERT INTO match_server_analytics \(server_ip, %s\)`, test.column)).
				WithArgs(serverInet).
				WillReturnResult(sqlmock.NewResult(1, 1))

			if err := test.call(context.Background(), serverInet); err != nil {
				t.Fatal(err)
			}
		})
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAnalyticsGetCounts(t *testing.T) {
	manager, mock := newMockedManager(t)
	serverInet := testServerInet(t)

	tests := []struct {
		name     string
		column   string
		call     func(context.Context, pqtype.Inet) (int64, error)
		expected int64
	}{
		{name: "matches hosted", column: "matches_hosted", call: manager.GetMatchesHostedCount, expected: 42},
		{name: "agent wins", column: "agent_wins", call: manager.GetAgentWinsCount, expected: 30},
		{name: "challenger wins", column: "challenger_wins", call: manager.GetChallengerWinsCount, expected: 7},
		{name: "forfeits", column: "forfeits", call: manager.GetForfeitsCount, expected: 5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mock.ExpectQuery(fmt.Sprintf(`SELECT %s FROM match_server_analytics WHERE server_ip = \$1`, test.column)).
				WithArgs(serverInet).
				WillReturnRows(sqlmock.NewRows([]string{test.column}).AddRow(test.expected))

			count, err := test.call(context.Background(), serverInet)
			if err != nil {
				t.Fatal(err)
			}
			if count != test.expected {
				t.Fatalf("expected count: %d\t got: %d", test.expected, count)
			}
		})
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAnalyticsGetCountNoRow(t *testing.T) {
	manager, mock := newMockedManager(t)
	serverInet := testServerInet(t)

	mock.ExpectQuery(`SELECT matches_hosted FROM match_server_analytics WHERE server_ip = \$1`).
		WithArgs(serverInet).
		WillReturnError(sql.ErrNoRows)

	if _, err := manager.GetMatchesHostedCount(context.Background(), serverInet); err == nil {
		t.Fatal("expected an error for a server without analytics rows")
	}
}
