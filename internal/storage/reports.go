package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sol1corejz/ecotrack/internal/models"
)

const reportColumns = `id, user_id, location, waste_type, amount, image_url, verification_result, status, collector_id, created_at, updated_at`

func scanReport(row interface {
	Scan(dest ...interface{}) error
}) (models.Report, error) {
	var report models.Report
	err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.Location,
		&report.WasteType,
		&report.Amount,
		&report.ImageURL,
		&report.VerificationResult,
		&report.Status,
		&report.CollectorID,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	return report, err
}

func GetReportByID(ctx context.Context, reportID uuid.UUID) (models.Report, error) {

	row := DB.QueryRowContext(ctx, `
		SELECT `+reportColumns+` FROM reports WHERE id = $1;
	`, reportID)

	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Report{}, models.ErrNotFound
		}
		return models.Report{}, err
	}

	return report, nil
}

func GetRecentReports(ctx context.Context, limit int) ([]models.Report, error) {

	var reports []models.Report

	rows, err := DB.QueryContext(ctx, `
		SELECT `+reportColumns+` FROM reports ORDER BY created_at DESC LIMIT $1;
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// CreateReportWithReward persists the report, the reporter's flat ledger
// credit, the counter bump and the notification in one transaction, so a
// report can never exist without its credit or vice versa.
func CreateReportWithReward(ctx context.Context, report models.Report, points int, description, notification string) error {

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reports (id, user_id, location, waste_type, amount, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, report.ID, report.UserID, report.Location, report.WasteType, report.Amount, report.ImageURL, models.ReportStatusPending)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err = appendCredit(ctx, tx, report.UserID, models.TxEarnedReport, points, description); err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, message, type) VALUES ($1, $2, $3, $4);
	`, uuid.New(), report.UserID, notification, models.NotificationReward)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ClaimReport is a compare-and-swap on status: the claim lands only if the
// report is still pending at write time. Returns false when the swap lost.
func ClaimReport(ctx context.Context, reportID, collectorID uuid.UUID) (bool, error) {

	result, err := DB.ExecContext(ctx, `
		UPDATE reports
		SET status = $1, collector_id = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND status = $4;
	`, models.ReportStatusInProgress, collectorID, reportID, models.ReportStatusPending)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// RecordVerificationAttempt stores the adapter outcome on a failed attempt.
// The report stays in_progress so the collector may retry.
func RecordVerificationAttempt(ctx context.Context, reportID, collectorID uuid.UUID, resultJSON string) error {

	result, err := DB.ExecContext(ctx, `
		UPDATE reports
		SET verification_result = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = $3 AND collector_id = $4;
	`, resultJSON, reportID, models.ReportStatusInProgress, collectorID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrInvalidState
	}

	return nil
}

// CompleteVerification moves the report to verified and persists every
// consequence — collected-waste record, collector credit, counter bump,
// notification — in a single transaction. The status update carries the same
// guard as the claim CAS: it only lands when the report is still in_progress
// and held by this collector.
func CompleteVerification(ctx context.Context, reportID, collectorID uuid.UUID, resultJSON string, award int) error {

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE reports
		SET status = $1, verification_result = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND status = $4 AND collector_id = $5;
	`, models.ReportStatusVerified, resultJSON, reportID, models.ReportStatusInProgress, collectorID)
	if err != nil {
		tx.Rollback()
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return models.ErrInvalidState
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO collected_wastes (id, report_id, collector_id) VALUES ($1, $2, $3);
	`, uuid.New(), reportID, collectorID)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err = appendCredit(ctx, tx, collectorID, models.TxEarnedCollect, award, "Points earned for collecting waste"); err != nil {
		tx.Rollback()
		return err
	}

	message := fmt.Sprintf("You've earned %d points for collecting waste!", award)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, message, type) VALUES ($1, $2, $3, $4);
	`, uuid.New(), collectorID, message, models.NotificationReward)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func GetCollectedByCollector(ctx context.Context, collectorID uuid.UUID) ([]models.CollectedWaste, error) {

	var collected []models.CollectedWaste

	rows, err := DB.QueryContext(ctx, `
		SELECT id, report_id, collector_id, collected_at, status
		FROM collected_wastes WHERE collector_id = $1 ORDER BY collected_at DESC;
	`, collectorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cw models.CollectedWaste
		err = rows.Scan(&cw.ID, &cw.ReportID, &cw.CollectorID, &cw.CollectedAt, &cw.Status)
		if err != nil {
			return nil, err
		}
		collected = append(collected, cw)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return collected, nil
}
