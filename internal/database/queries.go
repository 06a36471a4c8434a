package database

const (
	// User queries
	queryInsertUser = `
		INSERT INTO users (username, password, security_question, security_answer)
		VALUES (?, ?, ?, ?)`

	queryGetUser = `
		SELECT username, password, security_question, security_answer
		FROM users
		WHERE username = ?`

	queryUpdateUserPassword = `
		UPDATE users SET password = ? WHERE username = ?`

	// Transaction queries
	queryInsertTransaction = `
		INSERT INTO transactions (
			date, customer_name, account_number, ifsc_code, mobile, address,
			transaction_no, transaction_type, transaction_mode, bank_name, amount
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryGetTransaction = `
		SELECT sr_no, date, customer_name, account_number, ifsc_code, mobile, address,
		       transaction_no, transaction_type, transaction_mode, bank_name, amount
		FROM transactions
		WHERE sr_no = ?`

	queryUpdateTransaction = `
		UPDATE transactions SET
			date = ?, customer_name = ?, account_number = ?, ifsc_code = ?,
			mobile = ?, address = ?, transaction_no = ?, transaction_type = ?,
			transaction_mode = ?, bank_name = ?, amount = ?
		WHERE sr_no = ?`

	queryDeleteTransaction = `
		DELETE FROM transactions WHERE sr_no = ?`

	queryListTransactions = `
		SELECT sr_no, date, customer_name, account_number, ifsc_code, mobile, address,
		       transaction_no, transaction_type, transaction_mode, bank_name, amount
		FROM transactions
		ORDER BY date DESC, sr_no DESC`

	queryListTransactionsByRange = `
		SELECT sr_no, date, customer_name, account_number, ifsc_code, mobile, address,
		       transaction_no, transaction_type, transaction_mode, bank_name, amount
		FROM transactions
		WHERE date(date) BETWEEN ? AND ?
		ORDER BY date DESC, sr_no DESC`

	// Balance queries
	queryGetCash = `
		SELECT cash FROM balances LIMIT 1`

	querySetCash = `
		UPDATE balances SET cash = ?`

	queryGetBankBalance = `
		SELECT balance FROM banks WHERE bank_name = ?`

	querySetBankBalance = `
		UPDATE banks SET balance = ? WHERE bank_name = ?`

	queryUpsertBank = `
		INSERT OR REPLACE INTO banks (bank_name, balance) VALUES (?, ?)`

	queryDeleteBank = `
		DELETE FROM banks WHERE bank_name = ?`

	queryListBanks = `
		SELECT bank_name, balance FROM banks ORDER BY bank_name`

	// Aggregate queries
	querySumBankBalances = `
		SELECT COALESCE(SUM(balance), 0) FROM banks`

	querySumAmountByType = `
		SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE transaction_type = ?`

	queryRangeSummary = `
		SELECT transaction_type, transaction_mode, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE date(date) BETWEEN ? AND ?
		GROUP BY transaction_type, transaction_mode
		ORDER BY transaction_type, transaction_mode`

	queryDailySummary = `
		SELECT date(date) AS trans_date,
		       COALESCE(SUM(CASE WHEN transaction_type = 'Deposit' THEN amount ELSE 0 END), 0) AS total_deposit,
		       COALESCE(SUM(CASE WHEN transaction_type = 'Withdrawal' THEN amount ELSE 0 END), 0) AS total_withdrawal
		FROM transactions
		GROUP BY trans_date
		ORDER BY trans_date DESC`

	queryTypeTotals = `
		SELECT transaction_type, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		GROUP BY transaction_type
		ORDER BY transaction_type`

	queryTypeTotalsByRange = `
		SELECT transaction_type, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE date(date) BETWEEN ? AND ?
		GROUP BY transaction_type
		ORDER BY transaction_type`
)
