// Package database owns the GORM connection: opening MySQL (TLS-aware) or
// the SQLite fallback, schema sync and admin seeding.
package database

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"census-api/config"
	"census-api/database/model"
	"census-api/logger"
	"census-api/util/common"
	"census-api/util/crypto"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

const tlsConfigName = "census"

func initModels() error {
	models := []any{
		&model.Admin{},
		&model.Participant{},
		&model.Work{},
		&model.Home{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			logger.Error("auto migrate failed:", err)
			return err
		}
	}
	return nil
}

// initAdmin seeds the admin credential: if a row with the configured login
// exists it is kept as-is, otherwise one is created with a bcrypt hash of the
// configured password.
func initAdmin() error {
	login := config.GetAdminUsername()

	var admin model.Admin
	err := db.Where("login = ?", login).First(&admin).Error
	if err == nil {
		return nil
	}
	if !IsNotFound(err) {
		return err
	}

	hash, err := crypto.HashPasswordAsBcrypt(config.GetAdminPassword())
	if err != nil {
		return err
	}
	return db.Create(&model.Admin{Login: login, Password: hash}).Error
}

// registerTLSConfig registers a named TLS config with the MySQL driver when
// DB_SSL is enabled. A CA bundle is loaded when one exists at the configured
// paths; otherwise the system roots apply.
func registerTLSConfig() (bool, error) {
	if !config.IsDBTLSEnabled() {
		return false, nil
	}

	tlsConfig := &tls.Config{}
	if caPath := config.GetDBCAPath(); caPath != "" {
		pem, err := os.ReadFile(caPath)
		if err != nil {
			return false, err
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return false, common.NewErrorf("no certificates parsed from %s", caPath)
		}
		tlsConfig.RootCAs = pool
	}

	if err := mysqldriver.RegisterTLSConfig(tlsConfigName, tlsConfig); err != nil {
		return false, err
	}
	return true, nil
}

func openDialector() (gorm.Dialector, error) {
	host := config.GetDBHost()
	if host == "" {
		dbPath := config.GetDBFile()
		if dir := path.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, fs.ModePerm); err != nil {
				return nil, err
			}
		}
		logger.Info("no DB_HOST configured, using sqlite database at ", dbPath)
		return sqlite.Open(dbPath), nil
	}

	name := config.GetDBName()
	user := config.GetDBUser()
	if name == "" || user == "" {
		return nil, common.NewErrorf("DB_NAME and DB_USER are required when DB_HOST is set")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		user, config.GetDBPassword(), host, config.GetDBPort(), name)

	withTLS, err := registerTLSConfig()
	if err != nil {
		return nil, err
	}
	if withTLS {
		dsn += "&tls=" + tlsConfigName
	}
	return mysql.Open(dsn), nil
}

func InitDB() error {
	dialector, err := openDialector()
	if err != nil {
		return err
	}

	var gormLogger gormlogger.Interface
	if config.IsDebug() {
		gormLogger = gormlogger.Default
	} else {
		gormLogger = gormlogger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}

	db, err = gorm.Open(dialector, c)
	if err != nil {
		return err
	}

	if err := Ping(); err != nil {
		return err
	}
	if err := initModels(); err != nil {
		return err
	}
	if err := initAdmin(); err != nil {
		return err
	}

	return nil
}

// Ping verifies connectivity over the underlying connection pool.
func Ping() error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func CloseDB() error {
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a uniqueness violation, which both the
// mysql and sqlite drivers translate to gorm.ErrDuplicatedKey.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
