package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/alquimia/backend/internal/integration/persistence/model"
)

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		Theme:        "dark",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokens("test@example.com")
}

// iAmLoggedInAs switches the current user, creating them if needed.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "DefaultPass123!", "Test User "+email); err != nil {
			return err
		}
	} else {
		t.currentUserID = userModel.ID
	}
	return t.issueTokens(email)
}

// issueTokens signs a JWT pair for the current user and stores the refresh
// token so that refresh and logout flows work against the real service.
func (t *testContext) issueTokens(email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "alquimia",
		"sub":        t.currentUserID.String(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessToken

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "alquimia",
		"sub":        t.currentUserID.String(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}
	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) aWalletExistsWithNameAndKind(name, kind string) error {
	walletID := uuid.New()
	t.currentWalletID = walletID

	now := time.Now().UTC()
	walletModel := &model.WalletModel{
		ID:        walletID,
		UserID:    t.currentUserID,
		Name:      name,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(walletModel).Error
}

func (t *testContext) aCreditCardWalletExists(closingDay, dueDay int) error {
	walletID := uuid.New()
	t.currentWalletID = walletID

	now := time.Now().UTC()
	walletModel := &model.WalletModel{
		ID:         walletID,
		UserID:     t.currentUserID,
		Name:       "Tarjeta Visa",
		Kind:       "credit",
		ClosingDay: &closingDay,
		DueDay:     &dueDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(walletModel).Error
}

func (t *testContext) aListExistsWithName(name string) error {
	listID := uuid.New()
	t.currentListID = listID

	now := time.Now().UTC()
	listModel := &model.TransmutationListModel{
		ID:        listID,
		UserID:    t.currentUserID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(listModel).Error
}

func (t *testContext) theListHasAPendingItem(name, amount string) error {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	itemID := uuid.New()
	t.currentItemID = itemID

	itemModel := &model.TransmutationItemModel{
		ID:     itemID,
		ListID: t.currentListID,
		Name:   name,
		Amount: parsed,
	}
	return t.db.DbConn.Create(itemModel).Error
}

func (t *testContext) aTransactionExistsWithDescriptionAndAmount(description, amount string) error {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastID = transactionID
	t.transactionIDs = append(t.transactionIDs, transactionID)

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		UserID:      t.currentUserID,
		Type:        "expense",
		Amount:      parsed,
		Description: description,
		ListID:      t.currentListID,
		Element:     "Tierra",
		WalletID:    t.currentWalletID,
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(transactionModel).Error
}

// anInstallmentPurchaseExists seeds a full installment group: one leg per
// month, all pointing at the first leg's ID.
func (t *testContext) anInstallmentPurchaseExists(description, total string, installments int) error {
	totalAmount, err := decimal.NewFromString(total)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", total, err)
	}

	perLeg := totalAmount.Div(decimal.NewFromInt(int64(installments))).Round(2)
	originalID := uuid.New()
	t.originalID = originalID

	now := time.Now().UTC()
	for i := 1; i <= installments; i++ {
		legID := originalID
		if i > 1 {
			legID = uuid.New()
		}
		current := i
		count := installments
		oid := originalID

		legModel := &model.TransactionModel{
			ID:                 legID,
			UserID:             t.currentUserID,
			Type:               "expense",
			Amount:             perLeg,
			Description:        fmt.Sprintf("%s (%d/%d)", description, i, installments),
			ListID:             t.currentListID,
			Element:            "Fuego",
			WalletID:           t.currentWalletID,
			Date:               now.AddDate(0, i-1, 0),
			CreatedAt:          now,
			UpdatedAt:          now,
			InstallmentCurrent: &current,
			InstallmentTotal:   &count,
			OriginalID:         &oid,
		}
		if err := t.db.DbConn.Create(legModel).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{wallet_id}}", t.currentWalletID.String())
	content = strings.ReplaceAll(content, "{{list_id}}", t.currentListID.String())
	content = strings.ReplaceAll(content, "{{item_id}}", t.currentItemID.String())
	content = strings.ReplaceAll(content, "{{original_id}}", t.originalID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture IDs from creation responses for later placeholders.
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}

	return nil
}
