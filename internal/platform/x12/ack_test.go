package x12

import "testing"

func TestAcknowledgmentAccepted(t *testing.T) {
	text := "ISA*00*          *00*          *ZZ*MCD01*ZZ*123456789*250702*0800*^*00501*000000011*0*P*:~" +
		"GS*FA*MCD01*123456789*20250702*0800*11*X*005010X231A1~" +
		"ST*999*0001*005010X231A1~AK1*HC*77~AK9*A*1*1*1~SE*4*0001~GE*1*11~IEA*1*000000011~"

	got := ParseAcknowledgment(text)
	if !got.Accepted {
		t.Error("AK9*A with no reject marker must be accepted")
	}
	if len(got.Errors) != 0 {
		t.Errorf("unexpected errors: %v", got.Errors)
	}
}

func TestAcknowledgmentRejectedWithDetail(t *testing.T) {
	text := "ST*999*0001~AK1*HC*77~IK3*CLM*22**8~IK4*2*782*1~IK4*5*1331*7~IK5*R*5~AK9*R*1*1*0~SE*8*0001~"

	got := ParseAcknowledgment(text)
	if got.Accepted {
		t.Error("IK5*R must reject")
	}
	if len(got.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(got.Errors), got.Errors)
	}
	if got.Errors[0] != "IK4*2*782*1" || got.Errors[1] != "IK4*5*1331*7" {
		t.Errorf("IK4 detail not collected verbatim: %v", got.Errors)
	}
}

func TestAcknowledgmentMixedMarkersReject(t *testing.T) {
	got := ParseAcknowledgment("IK5*A~IK5*E~AK9*A*1*1*1~")
	if got.Accepted {
		t.Error("any reject marker must override an accept marker")
	}
}

func TestAcknowledgmentIndeterminate(t *testing.T) {
	got := ParseAcknowledgment("ISA*00*garbage~TA1*000000011*250702*0800*A*000~IEA*1*000000011~")
	if got.Accepted {
		t.Error("text without an accept marker must not be accepted")
	}
	if len(got.Errors) != 0 {
		t.Errorf("indeterminate result must carry no errors: %v", got.Errors)
	}
}

func TestAcknowledgmentNewlineSeparatedSegments(t *testing.T) {
	got := ParseAcknowledgment("ST*999*0001~\nIK5*A*~\nAK9*A*1*1*1~\n")
	if !got.Accepted {
		t.Error("newline-separated acknowledgment must still parse")
	}
}
