package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
	"traceability-api/internal/services"
)

type stubOperationsLog struct {
	err   error
	calls int
	last  *models.OperationLogMessage
}

func (s *stubOperationsLog) Insert(ctx context.Context, msg *models.OperationLogMessage) error {
	s.calls++
	s.last = msg
	return s.err
}

type stubProtocol struct {
	err   error
	calls int
}

func (s *stubProtocol) Insert(ctx context.Context, req *models.ProtocolPartRequest) error {
	s.calls++
	return s.err
}

func testProcessor(opsErr, protoErr error) (*Processor, *stubOperationsLog, *stubProtocol) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel) // Reduce noise in tests

	ops := &stubOperationsLog{err: opsErr}
	proto := &stubProtocol{err: protoErr}
	svcs := &services.ServiceContainer{OperationsLog: ops, Protocol: proto}
	return NewProcessor(svcs, logger), ops, proto
}

func TestProcessor_RoutesByQueueName(t *testing.T) {
	p, ops, proto := testProcessor(nil, nil)
	ctx := context.Background()

	if err := p.Process(ctx, OperationsLogQueue, []byte(`{"part_id": "P-1"}`)); err != nil {
		t.Fatalf("Process(operations) error = %v", err)
	}
	if err := p.Process(ctx, ProtocolPartQueue, []byte(`{"part_id": "P-1", "protocol_id": "PR-7"}`)); err != nil {
		t.Fatalf("Process(protocol) error = %v", err)
	}
	if ops.calls != 1 || proto.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", ops.calls, proto.calls)
	}

	if err := p.Process(ctx, "some-other-queue", []byte(`{}`)); err == nil {
		t.Error("Process(unknown queue) error = nil, want error")
	}
}

func TestProcessor_MalformedMessageIsDropped(t *testing.T) {
	p, ops, _ := testProcessor(nil, nil)

	// Redelivery cannot fix a payload that never parses, so no error.
	if err := p.ProcessOperationsLog(context.Background(), []byte(`{not json`)); err != nil {
		t.Fatalf("ProcessOperationsLog() error = %v, want nil", err)
	}
	if ops.calls != 0 {
		t.Errorf("service calls = %d, want 0", ops.calls)
	}
}

func TestProcessor_ValidationFailureIsDropped(t *testing.T) {
	p, _, _ := testProcessor(dispatch.NewValidation("message must contain 'part_id'"), nil)

	if err := p.ProcessOperationsLog(context.Background(), []byte(`{}`)); err != nil {
		t.Fatalf("ProcessOperationsLog() error = %v, want nil", err)
	}
}

func TestProcessor_TransientFailureIsRedelivered(t *testing.T) {
	dbErr := dispatch.NewConnectivity(errors.New("login failed"))
	p, _, proto := testProcessor(dbErr, dbErr)

	if err := p.ProcessOperationsLog(context.Background(), []byte(`{"part_id": "P-1"}`)); !errors.Is(err, dbErr) {
		t.Errorf("ProcessOperationsLog() error = %v, want the transient failure", err)
	}
	if err := p.ProcessProtocolPart(context.Background(), []byte(`{"part_id": "P-1", "protocol_id": "PR-7"}`)); !errors.Is(err, dbErr) {
		t.Errorf("ProcessProtocolPart() error = %v, want the transient failure", err)
	}
	if proto.calls != 1 {
		t.Errorf("protocol calls = %d, want 1", proto.calls)
	}
}

func TestProcessor_MessageFieldsReachService(t *testing.T) {
	p, ops, _ := testProcessor(nil, nil)

	body := []byte(`{"part_id": "P-1", "station_id": "ST-5", "status": "IN"}`)
	if err := p.ProcessOperationsLog(context.Background(), body); err != nil {
		t.Fatalf("ProcessOperationsLog() error = %v", err)
	}
	if ops.last == nil || ops.last.PartID != "P-1" {
		t.Fatalf("message = %+v", ops.last)
	}
	if ops.last.StationID == nil || *ops.last.StationID != "ST-5" {
		t.Errorf("StationID = %v, want ST-5", ops.last.StationID)
	}
}
