package database

// Schema is the full store layout. Cascade rules live here: deleting an
// account takes its contacts and activities with it, deleting a lead, contact
// or opportunity takes the activities that reference it, and the optional
// back-references on leads and opportunities are nulled instead of dangling.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    industry    TEXT NOT NULL,
    website     TEXT NOT NULL DEFAULT '',
    phone       TEXT NOT NULL DEFAULT '',
    address     TEXT NOT NULL DEFAULT '',
    city        TEXT NOT NULL DEFAULT '',
    state       TEXT NOT NULL DEFAULT '',
    country     TEXT NOT NULL DEFAULT '',
    employees   INTEGER NOT NULL DEFAULT 0,
    revenue     TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS leads (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    email       TEXT NOT NULL,
    phone       TEXT NOT NULL DEFAULT '',
    company     TEXT NOT NULL DEFAULT '',
    industry    TEXT NOT NULL DEFAULT '',
    location    TEXT NOT NULL DEFAULT '',
    score       REAL NOT NULL DEFAULT 0,
    status      TEXT NOT NULL CHECK(status IN ('Hot', 'Warm', 'Cold')),
    ai_insight  TEXT NOT NULL DEFAULT '',
    notes       TEXT NOT NULL DEFAULT '',
    source      TEXT NOT NULL DEFAULT '',
    account_id  TEXT NULL REFERENCES accounts(id) ON DELETE SET NULL,
    created_at  TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    email        TEXT NOT NULL,
    phone        TEXT NOT NULL DEFAULT '',
    title        TEXT NOT NULL DEFAULT '',
    department   TEXT NOT NULL DEFAULT '',
    account_id   TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
    is_primary   INTEGER NOT NULL DEFAULT 0,
    linkedin_url TEXT NOT NULL DEFAULT '',
    notes        TEXT NOT NULL DEFAULT '',
    created_at   TEXT NOT NULL,
    updated_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS opportunities (
    id              TEXT PRIMARY KEY,
    title           TEXT NOT NULL,
    company         TEXT NOT NULL,
    contact_name    TEXT NOT NULL DEFAULT '',
    value           INTEGER NOT NULL DEFAULT 0,
    stage           TEXT NOT NULL CHECK(stage IN (
                        'Discovery', 'Qualification', 'Proposal',
                        'Negotiation', 'Closed Won', 'Closed Lost')),
    close_date      TEXT NOT NULL,
    win_probability INTEGER NOT NULL DEFAULT 0,
    urgent          INTEGER NOT NULL DEFAULT 0,
    ai_analysis     TEXT NOT NULL DEFAULT '',
    description     TEXT NOT NULL DEFAULT '',
    lead_id         TEXT NULL REFERENCES leads(id) ON DELETE SET NULL,
    account_id      TEXT NULL REFERENCES accounts(id) ON DELETE SET NULL,
    contact_id      TEXT NULL REFERENCES contacts(id) ON DELETE SET NULL,
    created_at      TEXT NOT NULL,
    updated_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS activities (
    id             TEXT PRIMARY KEY,
    type           TEXT NOT NULL CHECK(type IN (
                       'call', 'email', 'meeting', 'demo', 'proposal', 'follow-up')),
    title          TEXT NOT NULL,
    description    TEXT NOT NULL DEFAULT '',
    contact_name   TEXT NOT NULL DEFAULT '',
    company        TEXT NOT NULL DEFAULT '',
    status         TEXT NOT NULL CHECK(status IN ('completed', 'pending', 'scheduled')),
    duration       INTEGER NOT NULL DEFAULT 0,
    outcome        TEXT NOT NULL DEFAULT '',
    notes          TEXT NOT NULL DEFAULT '',
    scheduled_date TEXT NULL,
    completed_date TEXT NULL,
    lead_id        TEXT NULL REFERENCES leads(id) ON DELETE CASCADE,
    opportunity_id TEXT NULL REFERENCES opportunities(id) ON DELETE CASCADE,
    account_id     TEXT NULL REFERENCES accounts(id) ON DELETE CASCADE,
    contact_id     TEXT NULL REFERENCES contacts(id) ON DELETE CASCADE,
    created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_profile (
    id                TEXT PRIMARY KEY,
    name              TEXT NOT NULL,
    email             TEXT NOT NULL,
    company           TEXT NOT NULL DEFAULT '',
    title             TEXT NOT NULL DEFAULT '',
    phone             TEXT NOT NULL DEFAULT '',
    bio               TEXT NOT NULL DEFAULT '',
    location          TEXT NOT NULL DEFAULT '',
    timezone          TEXT NOT NULL DEFAULT '',
    quota_target      TEXT NOT NULL DEFAULT '',
    dashboard_widgets TEXT NOT NULL DEFAULT '[]',
    updated_at        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contacts_account ON contacts(account_id);
CREATE INDEX IF NOT EXISTS idx_leads_account ON leads(account_id);
CREATE INDEX IF NOT EXISTS idx_opportunities_account ON opportunities(account_id);
CREATE INDEX IF NOT EXISTS idx_activities_lead ON activities(lead_id);
CREATE INDEX IF NOT EXISTS idx_activities_opportunity ON activities(opportunity_id);
CREATE INDEX IF NOT EXISTS idx_activities_account ON activities(account_id);
CREATE INDEX IF NOT EXISTS idx_activities_contact ON activities(contact_id);
`
