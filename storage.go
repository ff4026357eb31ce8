package ngramdex

import (
	"bytes"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Storage is the persistence surface the engine needs from a database: a key
// source to build from, and a shelf for serialized corpus blobs.
type Storage interface {
	KeySource
	CountKeys() (int, error)
	AddKey(KeyRecord) error                  // キーを挿入する
	SaveCorpus(name string, c *Corpus) error // シリアライズしたコーパスを保存する
	LoadCorpus(name string, filters ...CharFilter) (*Corpus, error)
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

func (s *StorageRdbImpl) CountKeys() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from corpus_keys`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

// GetAllKeys returns every corpus key in insertion order, so that a corpus
// rebuilt from the same table assigns the same DocumentIDs.
func (s *StorageRdbImpl) GetAllKeys() ([]KeyRecord, error) {
	var records []KeyRecord
	if err := s.DB.Select(&records, `select term, weight from corpus_keys order by id`); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *StorageRdbImpl) AddKey(record KeyRecord) error {
	_, err := s.DB.NamedExec(`insert into corpus_keys (term, weight) values (:term, :weight)`,
		map[string]interface{}{
			"term":   record.Key,
			"weight": record.Weight,
		})
	if err != nil {
		if mysqlErr, ok := err.(*mysql.MySQLError); ok {
			if mysqlErr.Number == 1062 {
				return nil
			}
		}
		return err
	}
	return nil
}

// SaveCorpus shelves the serialized corpus under a name, replacing any
// previous blob with that name.
func (s *StorageRdbImpl) SaveCorpus(name string, c *Corpus) error {
	var blob bytes.Buffer
	if err := c.Save(&blob); err != nil {
		return err
	}
	_, err := s.DB.NamedExec(
		`insert into corpora (name, body)
		values (:name, :body)
		on duplicate key update body = :body`,
		map[string]interface{}{
			"name": name,
			"body": blob.Bytes(),
		})
	return err
}

// LoadCorpus reloads a shelved corpus. Char filters do not survive
// serialization and must be passed again, as with Load.
func (s *StorageRdbImpl) LoadCorpus(name string, filters ...CharFilter) (*Corpus, error) {
	var blob []byte
	if err := s.DB.Get(&blob, `select body from corpora where name = ?`, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ngramdex: no corpus named %q", name)
		}
		return nil, err
	}
	return Load(bytes.NewReader(blob), filters...)
}
