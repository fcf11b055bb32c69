package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
)

// AddTransaction validates and stores a transaction, returning its id.
// A zero amount is rejected with model.ErrZeroAmount.
func (s *Store) AddTransaction(ctx context.Context, t model.Transaction) (string, error) {
	return insertTransaction(ctx, s.db, t, "")
}

func insertTransaction(ctx context.Context, db execer, t model.Transaction, sourceFile string) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO transactions
		(id, ts, amount, type, category, description, currency, source_file)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, formatTime(t.Timestamp), t.Amount.String(), string(t.Type),
		t.Category, t.Description, t.Currency, nullString(sourceFile),
	)
	if err != nil {
		return "", fmt.Errorf("inserting transaction: %w", err)
	}
	return t.ID, nil
}

// ListTransactions returns the most recent transactions, newest first.
// A limit of zero or less returns every transaction.
func (s *Store) ListTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	query := `SELECT id, ts, amount, type, category, description, currency
		FROM transactions ORDER BY ts DESC, id`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var ts, amount, typ string
		if err := rows.Scan(&t.ID, &ts, &amount, &typ, &t.Category, &t.Description, &t.Currency); err != nil {
			return nil, err
		}
		if t.Timestamp, err = parseTime(ts); err != nil {
			return nil, fmt.Errorf("transaction %s timestamp: %w", t.ID, err)
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("transaction %s amount: %w", t.ID, err)
		}
		t.Type = model.TransactionType(typ)
		out = append(out, t)
	}
	return out, rows.Err()
}

// AddAsset validates and stores an asset, returning its id.
func (s *Store) AddAsset(ctx context.Context, a model.Asset) (string, error) {
	return insertAsset(ctx, s.db, a, "")
}

func insertAsset(ctx context.Context, db execer, a model.Asset, sourceFile string) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO assets
		(id, name, category, current_value, currency, source_file)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, string(a.Category), a.CurrentValue.String(), a.Currency, nullString(sourceFile),
	)
	if err != nil {
		return "", fmt.Errorf("inserting asset: %w", err)
	}
	return a.ID, nil
}

// ListAssets returns every asset ordered by name.
func (s *Store) ListAssets(ctx context.Context) ([]model.Asset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, category, current_value, currency
		FROM assets ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Asset
	for rows.Next() {
		var a model.Asset
		var category string
		if err := rows.Scan(&a.ID, &a.Name, &category, &a.CurrentValue, &a.Currency); err != nil {
			return nil, err
		}
		a.Category = model.AssetCategory(category)
		out = append(out, a)
	}
	return out, rows.Err()
}

// AddLiability validates and stores a liability, returning its id.
func (s *Store) AddLiability(ctx context.Context, l model.Liability) (string, error) {
	return insertLiability(ctx, s.db, l, "")
}

func insertLiability(ctx context.Context, db execer, l model.Liability, sourceFile string) (string, error) {
	if err := l.Validate(); err != nil {
		return "", err
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO liabilities
		(id, name, category, remaining_amount, interest_rate, monthly_payment, currency, source_file)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, string(l.Category), l.RemainingAmount.String(),
		nullDecimal(l.InterestRate), nullDecimal(l.MonthlyPayment), l.Currency, nullString(sourceFile),
	)
	if err != nil {
		return "", fmt.Errorf("inserting liability: %w", err)
	}
	return l.ID, nil
}

// ListLiabilities returns every liability ordered by name.
func (s *Store) ListLiabilities(ctx context.Context) ([]model.Liability, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, category, remaining_amount,
		interest_rate, monthly_payment, currency
		FROM liabilities ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing liabilities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Liability
	for rows.Next() {
		var l model.Liability
		var category string
		var rate, payment decimal.NullDecimal
		if err := rows.Scan(&l.ID, &l.Name, &category, &l.RemainingAmount, &rate, &payment, &l.Currency); err != nil {
			return nil, err
		}
		l.Category = model.LiabilityCategory(category)
		if rate.Valid {
			l.InterestRate = &rate.Decimal
		}
		if payment.Valid {
			l.MonthlyPayment = &payment.Decimal
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// AddGoal validates and stores a savings goal, returning its id.
func (s *Store) AddGoal(ctx context.Context, g model.SavingsGoal) (string, error) {
	return insertGoal(ctx, s.db, g, "")
}

func insertGoal(ctx context.Context, db execer, g model.SavingsGoal, sourceFile string) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Status == "" {
		g.Status = model.GoalActive
	}
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO goals
		(id, name, target_amount, current_amount, status, source_file)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.TargetAmount.String(), g.CurrentAmount.String(), string(g.Status), nullString(sourceFile),
	)
	if err != nil {
		return "", fmt.Errorf("inserting goal: %w", err)
	}
	return g.ID, nil
}

// ListGoals returns every savings goal ordered by name.
func (s *Store) ListGoals(ctx context.Context) ([]model.SavingsGoal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, target_amount, current_amount, status
		FROM goals ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.SavingsGoal
	for rows.Next() {
		var g model.SavingsGoal
		var status string
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &status); err != nil {
			return nil, err
		}
		g.Status = model.GoalStatus(status)
		out = append(out, g)
	}
	return out, rows.Err()
}

// AddRecurring validates and stores a recurring expense, returning its id.
func (s *Store) AddRecurring(ctx context.Context, r model.RecurringExpense) (string, error) {
	return insertRecurring(ctx, s.db, r, "")
}

func insertRecurring(ctx context.Context, db execer, r model.RecurringExpense, sourceFile string) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO recurring_expenses
		(id, name, amount, frequency, is_active, source_file)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Amount.String(), string(r.Frequency), boolInt(r.IsActive), nullString(sourceFile),
	)
	if err != nil {
		return "", fmt.Errorf("inserting recurring expense: %w", err)
	}
	return r.ID, nil
}

// ListRecurring returns every recurring expense ordered by name.
func (s *Store) ListRecurring(ctx context.Context) ([]model.RecurringExpense, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, amount, frequency, is_active
		FROM recurring_expenses ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing recurring expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.RecurringExpense
	for rows.Next() {
		var r model.RecurringExpense
		var freq string
		var active int
		if err := rows.Scan(&r.ID, &r.Name, &r.Amount, &freq, &active); err != nil {
			return nil, err
		}
		r.Frequency = model.Frequency(freq)
		r.IsActive = active != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullDecimal(d *decimal.Decimal) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}
