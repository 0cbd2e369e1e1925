package ctxutil

import (
	"context"
	"testing"
)

func TestLogFields(t *testing.T) {
	if got := LogFields(context.Background()); len(got) != 0 {
		t.Fatalf("expected no fields, got %v", got)
	}

	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t1", RequestID: "r1"})
	ctx = WithRequestData(ctx, &RequestData{UserID: 9})
	got := LogFields(ctx)
	want := []interface{}{"trace_id", "t1", "request_id", "r1", "user_id", int64(9)}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestAccessorsOnBareContext(t *testing.T) {
	if GetTraceData(context.Background()) != nil || GetRequestData(context.Background()) != nil {
		t.Fatal("bare context should carry nothing")
	}
	if UserID(context.Background()) != 0 {
		t.Fatal("anonymous context should have user id 0")
	}
}
