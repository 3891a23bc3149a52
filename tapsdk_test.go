package tapsdk

import "testing"

func TestCodeCloudSaveRange(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeSuccess, false},
		{CodeNetworkError, false},
		{CodeCloudSaveInvalidFileSize, true},
		{CodeCloudSaveInvalidName, true},
		{Code(499999), true},
		{Code(500000), false},
	}
	for _, tt := range tests {
		if got := tt.code.CloudSaveRange(); got != tt.want {
			t.Errorf("%d.CloudSaveRange() = %v, want %v", int64(tt.code), got, tt.want)
		}
	}
}

func TestEventIDString(t *testing.T) {
	if got := EventCloudSaveGetCover.String(); got != "cloud-save-get-cover" {
		t.Errorf("String() = %q", got)
	}
	if got := EventID(1234).String(); got != "unknown(1234)" {
		t.Errorf("String() = %q", got)
	}
}
