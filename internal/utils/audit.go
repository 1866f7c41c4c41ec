package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mssola/useragent"
	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// AuditLog represents an audit log entry
type AuditLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action     string             `bson:"action" json:"action"`
	Resource   string             `bson:"resource" json:"resource"`
	ResourceID string             `bson:"resource_id,omitempty" json:"resource_id,omitempty"`
	NewValue   interface{}        `bson:"new_value,omitempty" json:"new_value,omitempty"`
	UserID     string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Usuario    string             `bson:"usuario,omitempty" json:"usuario,omitempty"`
	IPAddress  string             `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Metadata   map[string]string  `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Audit constants
const (
	AuditActionCreate         = "CREATE"
	AuditActionUpdate         = "UPDATE"
	AuditActionDelete         = "DELETE"
	AuditActionLogin          = "LOGIN"
	AuditActionRegister       = "REGISTER"
	AuditActionChangePassword = "CHANGE_PASSWORD"

	AuditResourcePessoa         = "pessoa"
	AuditResourcePessoaFisica   = "pessoa_fisica"
	AuditResourcePessoaJuridica = "pessoa_juridica"
	AuditResourceUsuario        = "usuario"
)

// AuditContext contains context information for audit logging
type AuditContext struct {
	UserID    string
	Usuario   string
	IPAddress string
	UserAgent string
	RequestID string
}

// AuditWriter persists a batch of audit entries
type AuditWriter interface {
	WriteAuditLogs(ctx context.Context, logs []AuditLog) error
}

// MongoAuditWriter stores audit entries in a MongoDB collection
type MongoAuditWriter struct {
	collection *mongo.Collection
}

// NewMongoAuditWriter creates a writer over the given collection
func NewMongoAuditWriter(collection *mongo.Collection) *MongoAuditWriter {
	return &MongoAuditWriter{collection: collection}
}

// WriteAuditLogs inserts the batch with one unordered bulk write
func (w *MongoAuditWriter) WriteAuditLogs(ctx context.Context, logs []AuditLog) error {
	if len(logs) == 0 {
		return nil
	}

	operations := make([]mongo.WriteModel, 0, len(logs))
	for _, log := range logs {
		operations = append(operations, mongo.NewInsertOneModel().SetDocument(log))
	}

	_, err := w.collection.BulkWrite(ctx, operations, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("bulk insert audit logs: %w", err)
	}
	return nil
}

// AuditWorker manages asynchronous audit logging
type AuditWorker struct {
	writer    AuditWriter
	auditChan chan AuditLog
	workers   int
	batchSize int
	interval  time.Duration
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

var (
	auditWorker   *AuditWorker
	auditWorkerMu sync.RWMutex
)

// NewAuditWorker starts workers that drain entries into writer in batches
func NewAuditWorker(writer AuditWriter, workers, bufferSize int) *AuditWorker {
	if workers < 1 {
		workers = 1
	}
	aw := &AuditWorker{
		writer:    writer,
		auditChan: make(chan AuditLog, bufferSize),
		workers:   workers,
		batchSize: 100,
		interval:  100 * time.Millisecond,
	}
	aw.start()
	return aw
}

// InitAuditWorker installs the global audit worker used by LogAuditEvent
func InitAuditWorker(writer AuditWriter, workers, bufferSize int) *AuditWorker {
	aw := NewAuditWorker(writer, workers, bufferSize)

	auditWorkerMu.Lock()
	auditWorker = aw
	auditWorkerMu.Unlock()
	return aw
}

// GetAuditWorker returns the global audit worker instance, nil when audit is off
func GetAuditWorker() *AuditWorker {
	auditWorkerMu.RLock()
	defer auditWorkerMu.RUnlock()
	return auditWorker
}

// ShutdownAuditWorker drains and uninstalls the global audit worker
func ShutdownAuditWorker() {
	auditWorkerMu.Lock()
	aw := auditWorker
	auditWorker = nil
	auditWorkerMu.Unlock()

	aw.Stop()
}

func (aw *AuditWorker) start() {
	aw.wg.Add(aw.workers)
	for i := 0; i < aw.workers; i++ {
		go func() {
			defer aw.wg.Done()
			aw.processAuditLogs()
		}()
	}

	logging.Logger.Info("audit worker started",
		zap.Int("workers", aw.workers),
		zap.Int("buffer_size", cap(aw.auditChan)))
}

// processAuditLogs flushes when a batch fills up or the ticker fires
func (aw *AuditWorker) processAuditLogs() {
	ticker := time.NewTicker(aw.interval)
	defer ticker.Stop()

	batch := make([]AuditLog, 0, aw.batchSize)
	for {
		select {
		case entry, ok := <-aw.auditChan:
			if !ok {
				aw.flushBatch(batch)
				return
			}
			batch = append(batch, entry)
			if len(batch) >= aw.batchSize {
				aw.flushBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				aw.flushBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (aw *AuditWorker) flushBatch(batch []AuditLog) {
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := aw.writer.WriteAuditLogs(ctx, batch); err != nil {
		logging.Logger.Error("failed to insert audit log batch",
			zap.Error(err),
			zap.Int("batch_size", len(batch)))
		countAudit(batch, "error")
		return
	}
	countAudit(batch, "success")
}

func countAudit(batch []AuditLog, status string) {
	for _, entry := range batch {
		observability.AuditEvents.WithLabelValues(entry.Resource, status).Inc()
	}
}

// Enqueue hands an entry to the workers. When the buffer is full the entry
// is written synchronously.
func (aw *AuditWorker) Enqueue(ctx context.Context, entry AuditLog) error {
	select {
	case aw.auditChan <- entry:
		return nil
	default:
	}

	logging.Logger.Warn("audit channel full, writing synchronously",
		zap.String("action", entry.Action),
		zap.String("resource", entry.Resource))

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := aw.writer.WriteAuditLogs(writeCtx, []AuditLog{entry}); err != nil {
		countAudit([]AuditLog{entry}, "error")
		return err
	}
	countAudit([]AuditLog{entry}, "success")
	return nil
}

// Stop drains the buffer and waits for the workers to exit
func (aw *AuditWorker) Stop() {
	if aw == nil {
		return
	}
	aw.stopOnce.Do(func() {
		close(aw.auditChan)
		aw.wg.Wait()
	})
}

// GetAuditWorkerStats returns current audit worker statistics
func (aw *AuditWorker) GetAuditWorkerStats() map[string]interface{} {
	if aw == nil {
		return map[string]interface{}{
			"status": "not_initialized",
		}
	}

	return map[string]interface{}{
		"status":           "running",
		"workers":          aw.workers,
		"buffer_capacity":  cap(aw.auditChan),
		"buffer_usage":     len(aw.auditChan),
		"buffer_available": cap(aw.auditChan) - len(aw.auditChan),
	}
}

// LogAuditEvent records an audit event through the global worker. It is a
// no-op when auditing is disabled.
func LogAuditEvent(ctx context.Context, auditCtx AuditContext, action, resource, resourceID string, newValue interface{}, metadata map[string]string) error {
	aw := GetAuditWorker()
	if aw == nil {
		return nil
	}

	ctx, span := TraceAuditLogging(ctx, action, resource)
	defer span.End()

	if metadata == nil {
		metadata = map[string]string{}
	}
	for k, v := range UserAgentMetadata(auditCtx.UserAgent) {
		metadata[k] = v
	}

	err := aw.Enqueue(ctx, AuditLog{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		NewValue:   SanitizeAuditData(newValue),
		UserID:     auditCtx.UserID,
		Usuario:    auditCtx.Usuario,
		IPAddress:  auditCtx.IPAddress,
		UserAgent:  auditCtx.UserAgent,
		RequestID:  auditCtx.RequestID,
		Timestamp:  time.Now().UTC(),
		Metadata:   metadata,
	})
	if err != nil {
		RecordErrorInSpan(span, err, map[string]interface{}{"audit.resource_id": resourceID})
	}
	return err
}

// GetAuditContextFromRequest builds an audit context from request values
func GetAuditContextFromRequest(userID, usuario, requestID, ipAddress, userAgent string) AuditContext {
	return AuditContext{
		UserID:    userID,
		Usuario:   usuario,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		RequestID: requestID,
	}
}

// UserAgentMetadata extracts browser, OS and device flags from a User-Agent header
func UserAgentMetadata(header string) map[string]string {
	if strings.TrimSpace(header) == "" {
		return map[string]string{}
	}

	ua := useragent.New(header)
	browser, version := ua.Browser()

	meta := map[string]string{
		"browser":         browser,
		"browser_version": version,
		"os":              ua.OS(),
		"mobile":          fmt.Sprintf("%t", ua.Mobile()),
	}
	if ua.Bot() {
		meta["bot"] = "true"
	}
	return meta
}

// SanitizeAuditData returns a JSON-shaped copy of data with credential
// fields redacted
func SanitizeAuditData(data interface{}) interface{} {
	if data == nil {
		return nil
	}

	var sanitized interface{}
	switch v := data.(type) {
	case []byte:
		if err := json.Unmarshal(v, &sanitized); err != nil {
			return nil
		}
	default:
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil
		}
		if err := json.Unmarshal(jsonData, &sanitized); err != nil {
			return nil
		}
	}

	sanitizeMap(sanitized)
	return sanitized
}

func isCredentialField(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "senha") || strings.Contains(key, "password") || key == "token"
}

func sanitizeMap(data interface{}) {
	switch v := data.(type) {
	case map[string]interface{}:
		for key, value := range v {
			if isCredentialField(key) {
				v[key] = "[REDACTED]"
				continue
			}
			sanitizeMap(value)
		}
	case []interface{}:
		for _, item := range v {
			sanitizeMap(item)
		}
	}
}
