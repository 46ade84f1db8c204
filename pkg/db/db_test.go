package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDSN(t *testing.T) {
	cfg := NewConfig("root", "secret", "127.0.0.1", "3306", "tradesdk")
	assert.Equal(t, "root:secret@tcp(127.0.0.1:3306)/tradesdk?charset=utf8mb4&parseTime=true&loc=Local", cfg.DSN())

	cfg = Config{User: "u", Password: "p", Host: "db", DBName: "x"}
	assert.Equal(t, "u:p@tcp(db)/x?charset=utf8mb4&parseTime=false&loc=Local", cfg.DSN())
}
