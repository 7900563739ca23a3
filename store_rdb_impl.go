package nori

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

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

const termsSchema = `
CREATE TABLE IF NOT EXISTS analyzed_terms (
	id BIGINT NOT NULL AUTO_INCREMENT,
	doc_id VARCHAR(255) NOT NULL,
	surface VARCHAR(255) NOT NULL,
	position INT NOT NULL,
	start_offset INT NOT NULL,
	end_offset INT NOT NULL,
	token_type VARCHAR(32) NOT NULL,
	pos_type VARCHAR(32) NOT NULL,
	left_pos VARCHAR(32) NOT NULL,
	right_pos VARCHAR(32) NOT NULL,
	reading VARCHAR(255) NOT NULL DEFAULT '',
	PRIMARY KEY (id),
	KEY idx_doc_id (doc_id)
)`

var _ TermStore = (*RDBTermStore)(nil)

type RDBTermStore struct {
	db *sqlx.DB
}

func NewRDBTermStore(db *sqlx.DB) *RDBTermStore {
	return &RDBTermStore{db: db}
}

func (s *RDBTermStore) EnsureSchema() error {
	_, err := s.db.Exec(termsSchema)
	return errors.Wrap(err, "ensure analyzed_terms schema")
}

type termRecord struct {
	DocID string `db:"doc_id"`
	Term
}

// SaveAnalysis replaces the stored analysis of a document with terms, in one
// transaction.
func (s *RDBTermStore) SaveAnalysis(docID string, terms []Term) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM analyzed_terms WHERE doc_id = ?`, docID); err != nil {
		return errors.Wrap(err, "delete stale terms")
	}
	for _, t := range terms {
		if _, err := tx.NamedExec(`
			INSERT INTO analyzed_terms
			(doc_id, surface, position, start_offset, end_offset, token_type, pos_type, left_pos, right_pos, reading)
			VALUES (:doc_id, :surface, :position, :start_offset, :end_offset, :token_type, :pos_type, :left_pos, :right_pos, :reading)`,
			termRecord{DocID: docID, Term: t},
		); err != nil {
			return errors.Wrap(err, "insert term")
		}
	}
	return errors.Wrap(tx.Commit(), "commit")
}

// GetAnalysis returns the stored terms of a document in emission order.
func (s *RDBTermStore) GetAnalysis(docID string) ([]Term, error) {
	terms := []Term{}
	err := s.db.Select(&terms, `
		SELECT surface, position, start_offset, end_offset, token_type, pos_type, left_pos, right_pos, reading
		FROM analyzed_terms WHERE doc_id = ? ORDER BY id`, docID)
	if err != nil {
		return nil, errors.Wrap(err, "select terms")
	}
	return terms, nil
}

func (s *RDBTermStore) DeleteAnalysis(docID string) error {
	_, err := s.db.Exec(`DELETE FROM analyzed_terms WHERE doc_id = ?`, docID)
	return errors.Wrap(err, "delete terms")
}
