package ristorante

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

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

func (c *DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true", c.User, c.Password, c.Addr, c.Port, c.DB)
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dbConfig.DSN())
	if err != nil {
		return nil, err
	}
	return db, nil
}

var schema = []string{
	`create table if not exists documents (
		id int not null primary key,
		name varchar(255) not null,
		address varchar(512) not null,
		city varchar(255) not null,
		postal_code varchar(32) not null,
		country varchar(255) not null,
		price_range varchar(32) not null,
		cuisine_type varchar(255) not null,
		description text not null,
		normalized_description text not null,
		facilities_services json not null,
		credit_cards json not null,
		phone_number varchar(64) not null,
		website varchar(512) not null
	) default charset = utf8mb4`,
	`create table if not exists tokens (
		id bigint unsigned not null primary key,
		term varchar(255) not null,
		unique key term_unique (term)
	) default charset = utf8mb4 collate utf8mb4_bin`,
	`create table if not exists boolean_postings (
		token_id bigint unsigned not null,
		document_id int not null,
		primary key (token_id, document_id)
	)`,
	`create table if not exists weighted_postings (
		term varchar(255) not null,
		document_id int not null,
		weight double not null,
		primary key (term, document_id)
	) default charset = utf8mb4 collate utf8mb4_bin`,
}

const insertBatchSize = 500

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

// Migrate creates the tables when they do not exist yet.
func (s *StorageRdbImpl) Migrate() error {
	for _, stmt := range schema {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *StorageRdbImpl) CountDocuments() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from documents`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (s *StorageRdbImpl) GetAllDocuments() ([]Document, error) {
	var docs []Document
	if err := s.DB.Select(&docs, `select * from documents order by id`); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *StorageRdbImpl) GetTokens() ([]Token, error) {
	var tokens []Token
	if err := s.DB.Select(&tokens, `select id, term from tokens order by id`); err != nil {
		return nil, err
	}
	return tokens, nil
}

type booleanPostingRow struct {
	TokenID    TokenID    `db:"token_id"`
	DocumentID DocumentID `db:"document_id"`
}

func (s *StorageRdbImpl) GetBooleanIndex() (BooleanIndex, error) {
	var rows []booleanPostingRow
	if err := s.DB.Select(&rows, `select token_id, document_id from boolean_postings order by token_id, document_id`); err != nil {
		return nil, err
	}
	idx := make(BooleanIndex)
	for _, r := range rows {
		idx.Add(r.TokenID, r.DocumentID)
	}
	return idx, nil
}

type weightedPostingRow struct {
	Term       string     `db:"term"`
	DocumentID DocumentID `db:"document_id"`
	Weight     float64    `db:"weight"`
}

func (s *StorageRdbImpl) GetWeightedIndex() (WeightedIndex, error) {
	var rows []weightedPostingRow
	if err := s.DB.Select(&rows, `select term, document_id, weight from weighted_postings`); err != nil {
		return nil, err
	}
	idx := make(WeightedIndex)
	for _, r := range rows {
		idx[r.Term] = append(idx[r.Term], WeightedPosting{DocumentID: r.DocumentID, Weight: r.Weight})
	}
	return idx, nil
}

// SaveSnapshot replaces every table with the contents of snapshot in one
// transaction.
func (s *StorageRdbImpl) SaveSnapshot(snapshot *Snapshot) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"documents", "tokens", "boolean_postings", "weighted_postings"} {
		if _, err := tx.Exec(`delete from ` + table); err != nil {
			return err
		}
	}

	docs := snapshot.Documents.All()
	for start := 0; start < len(docs); start += insertBatchSize {
		end := min(start+insertBatchSize, len(docs))
		if _, err := tx.NamedExec(`insert into documents
			(id, name, address, city, postal_code, country, price_range, cuisine_type, description,
			 normalized_description, facilities_services, credit_cards, phone_number, website)
			values
			(:id, :name, :address, :city, :postal_code, :country, :price_range, :cuisine_type, :description,
			 :normalized_description, :facilities_services, :credit_cards, :phone_number, :website)`, docs[start:end]); err != nil {
			return err
		}
	}

	tokens := snapshot.Vocabulary.Tokens()
	for start := 0; start < len(tokens); start += insertBatchSize {
		end := min(start+insertBatchSize, len(tokens))
		if _, err := tx.NamedExec(`insert into tokens (id, term) values (:id, :term)`, tokens[start:end]); err != nil {
			return err
		}
	}

	var booleanRows []booleanPostingRow
	for id, docIDs := range snapshot.BooleanIndex {
		for _, docID := range docIDs {
			booleanRows = append(booleanRows, booleanPostingRow{TokenID: id, DocumentID: docID})
		}
	}
	for start := 0; start < len(booleanRows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(booleanRows))
		if _, err := tx.NamedExec(`insert into boolean_postings (token_id, document_id) values (:token_id, :document_id)`, booleanRows[start:end]); err != nil {
			return err
		}
	}

	var weightedRows []weightedPostingRow
	for term, postings := range snapshot.WeightedIndex {
		for _, p := range postings {
			weightedRows = append(weightedRows, weightedPostingRow{Term: term, DocumentID: p.DocumentID, Weight: p.Weight})
		}
	}
	for start := 0; start < len(weightedRows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(weightedRows))
		if _, err := tx.NamedExec(`insert into weighted_postings (term, document_id, weight) values (:term, :document_id, :weight)`, weightedRows[start:end]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
