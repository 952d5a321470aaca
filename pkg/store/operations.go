package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/llm-readability/models"
)

// SaveEvaluation persists one scored page, returning the evaluation_id.
func (s *Store) SaveEvaluation(result *models.EvaluationResult) (int64, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to encode evaluation: %w", err)
	}

	var consensus sql.NullInt64
	if result.LLM != nil && result.LLM.Consensus != nil {
		consensus = sql.NullInt64{Int64: int64(*result.LLM.Consensus), Valid: true}
	}

	res, err := s.Exec(`
		INSERT INTO evaluations (url, overall_score, heuristics_score, llm_consensus, mode, elapsed_ms, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, result.URL, result.Overall, result.Heuristics.Overall, consensus,
		result.Metadata.Mode, result.Metadata.ElapsedMS, string(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get evaluation ID: %w", err)
	}
	return id, nil
}

// LatestEvaluation returns the most recent stored result for a URL, or
// sql.ErrNoRows when the URL has never been evaluated.
func (s *Store) LatestEvaluation(url string) (*models.EvaluationResult, error) {
	var payload string
	err := s.QueryRow(`
		SELECT payload FROM evaluations
		WHERE url = ?
		ORDER BY evaluation_id DESC
		LIMIT 1
	`, url).Scan(&payload)
	if err != nil {
		return nil, err
	}

	var result models.EvaluationResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored evaluation: %w", err)
	}
	return &result, nil
}

// SaveRelationships persists every classified pair of a similarity run.
func (s *Store) SaveRelationships(relationships []models.ContentRelationship) error {
	tx, err := s.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO relationships (url_a, url_b, category, confidence,
			title_similarity, intro_similarity, body_similarity, full_similarity,
			recommended_action, reasoning)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rel := range relationships {
		_, err := stmt.Exec(rel.URLA, rel.URLB, rel.Classification, rel.Confidence,
			rel.Similarities.Title, rel.Similarities.Intro,
			rel.Similarities.Body, rel.Similarities.Full,
			rel.RecommendedAction, rel.Reasoning)
		if err != nil {
			return fmt.Errorf("failed to insert relationship: %w", err)
		}
	}

	return tx.Commit()
}

// RelationshipsByCategory returns stored pairs matching one category.
func (s *Store) RelationshipsByCategory(category string) ([]models.ContentRelationship, error) {
	rows, err := s.Query(`
		SELECT url_a, url_b, category, confidence,
			title_similarity, intro_similarity, body_similarity, full_similarity,
			recommended_action, reasoning
		FROM relationships
		WHERE category = ?
		ORDER BY relationship_id
	`, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationships: %w", err)
	}
	defer rows.Close()

	var out []models.ContentRelationship
	for rows.Next() {
		var rel models.ContentRelationship
		err := rows.Scan(&rel.URLA, &rel.URLB, &rel.Classification, &rel.Confidence,
			&rel.Similarities.Title, &rel.Similarities.Intro,
			&rel.Similarities.Body, &rel.Similarities.Full,
			&rel.RecommendedAction, &rel.Reasoning)
		if err != nil {
			return nil, fmt.Errorf("failed to scan relationship: %w", err)
		}
		out = append(out, rel)
	}
	return out, rows.Err()
}
