package store

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Evaluations: one row per scored page per run
CREATE TABLE IF NOT EXISTS evaluations (
    evaluation_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    overall_score INTEGER NOT NULL,
    heuristics_score INTEGER NOT NULL,
    llm_consensus INTEGER,            -- NULL when no judge produced a score
    mode TEXT NOT NULL,               -- heuristics_only, blended
    elapsed_ms INTEGER NOT NULL,
    evaluated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- Full EvaluationResult as JSON for later inspection
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evaluations_url ON evaluations(url);
CREATE INDEX IF NOT EXISTS idx_evaluations_time ON evaluations(evaluated_at);

-- Relationships: one row per classified page pair
CREATE TABLE IF NOT EXISTS relationships (
    relationship_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url_a TEXT NOT NULL,
    url_b TEXT NOT NULL,
    category TEXT NOT NULL,
    confidence INTEGER NOT NULL,
    title_similarity REAL NOT NULL,
    intro_similarity REAL NOT NULL,
    body_similarity REAL NOT NULL,
    full_similarity REAL NOT NULL,
    recommended_action TEXT NOT NULL,
    reasoning TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_relationships_urls ON relationships(url_a, url_b);
CREATE INDEX IF NOT EXISTS idx_relationships_category ON relationships(category);
`
