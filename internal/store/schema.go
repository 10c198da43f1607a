package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reports (
    month                TEXT PRIMARY KEY,
    archived_at          TEXT,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS report_fields (
    month                TEXT NOT NULL REFERENCES reports(month) ON DELETE CASCADE,
    grp                  TEXT NOT NULL,
    field                TEXT NOT NULL,
    amount               REAL NOT NULL,
    PRIMARY KEY (month, grp, field)
);

CREATE TABLE IF NOT EXISTS data_sources (
    month                TEXT NOT NULL REFERENCES reports(month) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    grp                  TEXT NOT NULL,
    label                TEXT NOT NULL,
    url                  TEXT NOT NULL,
    PRIMARY KEY (month, position)
);

CREATE TABLE IF NOT EXISTS level_plans (
    level                TEXT PRIMARY KEY,
    notes                TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS plan_items (
    level                TEXT NOT NULL REFERENCES level_plans(level) ON DELETE CASCADE,
    kind                 TEXT NOT NULL,
    position             INTEGER NOT NULL,
    label                TEXT NOT NULL,
    amount               REAL NOT NULL,
    PRIMARY KEY (level, kind, position)
);

CREATE TABLE IF NOT EXISTS buckets (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    name                 TEXT NOT NULL,
    kind                 TEXT NOT NULL,
    balance              REAL NOT NULL DEFAULT 0,
    yield_pct            REAL NOT NULL DEFAULT 0,
    ticker               TEXT NOT NULL DEFAULT '',
    quantity             REAL NOT NULL DEFAULT 0,
    price                REAL NOT NULL DEFAULT 0,
    price_updated_at     TEXT,
    loan_original        REAL NOT NULL DEFAULT 0,
    loan_rate_pct        REAL NOT NULL DEFAULT 0,
    loan_payment         REAL NOT NULL DEFAULT 0,
    loan_term_months     INTEGER NOT NULL DEFAULT 0,
    loan_start           TEXT
);

CREATE INDEX IF NOT EXISTS idx_report_fields_month ON report_fields(month);
`
