package script

import (
	stderrors "errors"
	"testing"
	"time"

	tapsdk "github.com/taptap/tapsdk-go"
	"github.com/taptap/tapsdk-go/cloudsave"
	"github.com/taptap/tapsdk-go/errors"
	"github.com/taptap/tapsdk-go/events"
)

// fakeBackend records calls and serves canned answers.
type fakeBackend struct {
	clientID   string
	openID     string
	authorized []string
	authErr    error
	gameOwned  bool
	ownedDLC   map[string]bool
	storeHits  []string

	nextID  int64
	creates []cloudsave.CreateRequest
	deletes []string
	queued  []events.Event
}

func (f *fakeBackend) ClientID() (string, bool) { return f.clientID, f.clientID != "" }
func (f *fakeBackend) OpenID() (string, bool)   { return f.openID, f.openID != "" }

func (f *fakeBackend) Authorize(scopes string) error {
	if f.authErr != nil {
		return f.authErr
	}
	f.authorized = append(f.authorized, scopes)
	return nil
}

func (f *fakeBackend) GameOwned() bool            { return f.gameOwned }
func (f *fakeBackend) DLCOwned(dlcID string) bool { return f.ownedDLC[dlcID] }

func (f *fakeBackend) ShowDLCStore(dlcID string) (bool, error) {
	f.storeHits = append(f.storeHits, dlcID)
	return true, nil
}

func (f *fakeBackend) NextRequestID() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) CloudSaveList(int64) error { return nil }

func (f *fakeBackend) CloudSaveCreate(_ int64, req cloudsave.CreateRequest) error {
	f.creates = append(f.creates, req)
	return nil
}

func (f *fakeBackend) CloudSaveUpdate(int64, cloudsave.UpdateRequest) error { return nil }

func (f *fakeBackend) CloudSaveDelete(_ int64, uuid string) error {
	f.deletes = append(f.deletes, uuid)
	return nil
}

func (f *fakeBackend) CloudSaveGetData(int64, string, string) error  { return nil }
func (f *fakeBackend) CloudSaveGetCover(int64, string, string) error { return nil }

func (f *fakeBackend) Poll() []events.Event {
	evs := f.queued
	f.queued = nil
	return evs
}

func TestIdentity(t *testing.T) {
	f := &fakeBackend{clientID: "client-1", openID: "open-1"}
	e := New(f)

	val, err := e.RunScript("identity.js", `taptap.clientId() + "/" + taptap.openId()`)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if got := val.String(); got != "client-1/open-1" {
		t.Errorf("script returned %q", got)
	}
}

func TestIdentityNull(t *testing.T) {
	e := New(&fakeBackend{})

	val, err := e.RunScript("null.js", `taptap.clientId() === null && taptap.openId() === null`)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if !val.ToBoolean() {
		t.Error("missing identity should surface as null")
	}
}

func TestAuthorize(t *testing.T) {
	f := &fakeBackend{}
	e := New(f)

	if _, err := e.RunScript("auth.js", `taptap.authorize("public_profile")`); err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if len(f.authorized) != 1 || f.authorized[0] != "public_profile" {
		t.Errorf("authorized = %v", f.authorized)
	}
}

func TestAuthorizeErrorThrows(t *testing.T) {
	f := &fakeBackend{authErr: errors.AuthorizeFailed(tapsdk.AuthorizeInFlight)}
	e := New(f)

	val, err := e.RunScript("auth.js", `
		var caught = null;
		try { taptap.authorize("public_profile"); } catch (e) { caught = String(e); }
		caught
	`)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if val.String() == "null" {
		t.Error("backend failure should throw in the script")
	}
}

func TestOwnership(t *testing.T) {
	f := &fakeBackend{gameOwned: true, ownedDLC: map[string]bool{"dlc_1": true}}
	e := New(f)

	val, err := e.RunScript("own.js", `
		taptap.isGameOwned() && taptap.isDlcOwned("dlc_1") && !taptap.isDlcOwned("dlc_2")
	`)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if !val.ToBoolean() {
		t.Error("ownership answers wrong")
	}

	if _, err := e.RunScript("store.js", `taptap.showDlcStore("dlc_2")`); err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if len(f.storeHits) != 1 || f.storeHits[0] != "dlc_2" {
		t.Errorf("store hits = %v", f.storeHits)
	}
}

func TestCloudSaveRequestIDs(t *testing.T) {
	f := &fakeBackend{}
	e := New(f)

	val, err := e.RunScript("cs.js", `
		var a = taptap.cloudSave.list();
		var b = taptap.cloudSave.delete("uuid-1");
		[a, b]
	`)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	var ids []int64
	if err := e.vm.ExportTo(val, &ids); err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("request IDs = %v", ids)
	}
	if len(f.deletes) != 1 || f.deletes[0] != "uuid-1" {
		t.Errorf("deletes = %v", f.deletes)
	}
}

func TestCloudSaveCreateObject(t *testing.T) {
	f := &fakeBackend{}
	e := New(f)

	_, err := e.RunScript("create.js", `
		taptap.cloudSave.create({
			name: "slot-1",
			summary: "before the boss",
			extra: "{}",
			playtime: 4200,
			dataFilePath: "saves/slot1.dat",
		})
	`)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if len(f.creates) != 1 {
		t.Fatalf("creates = %v", f.creates)
	}
	got := f.creates[0]
	if got.Name != "slot-1" || got.Summary != "before the boss" || got.Playtime != 4200 {
		t.Errorf("create request = %+v", got)
	}
	if got.DataFilePath != "saves/slot1.dat" || got.CoverFilePath != "" {
		t.Errorf("create request = %+v", got)
	}
}

func TestEventDelivery(t *testing.T) {
	f := &fakeBackend{}
	f.queued = []events.Event{
		&events.SystemStateChanged{State: tapsdk.StatePlatformOnline},
		&events.CloudSaveDelete{RequestID: 7, UUID: "uuid-1"},
		&events.CloudSaveGetData{RequestID: 8, Data: []byte{1, 2, 3}},
	}
	e := New(f)

	val, err := e.RunScript("events.js", `
		var seen = [];
		taptap.onEvent(function (ev) { seen.push(ev); });
		var n = taptap.poll();
		[
			n,
			seen[0].eventId, seen[0].state,
			seen[1].requestId, seen[1].uuid, seen[1].error === null,
			seen[2].data.byteLength,
		].join(",")
	`)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	want := "3,1,online,7,uuid-1,true,3"
	if got := val.String(); got != want {
		t.Errorf("script saw %q, want %q", got, want)
	}

	// Queue drained; nothing redelivered.
	val, err = e.RunScript("again.js", `taptap.poll()`)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if val.ToInteger() != 0 {
		t.Errorf("second poll = %v", val)
	}
}

func TestAuthorizeFinishedShape(t *testing.T) {
	f := &fakeBackend{}
	f.queued = []events.Event{
		&events.AuthorizeFinished{
			Token: &events.AuthToken{
				TokenType: "mac",
				KeyID:     "kid-1",
				MacKey:    "key",
			},
		},
	}
	e := New(f)

	val, err := e.RunScript("token.js", `
		var token = null;
		taptap.onEvent(function (ev) { token = ev.token; });
		taptap.poll();
		token.tokenType + "/" + token.kid
	`)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if got := val.String(); got != "mac/kid-1" {
		t.Errorf("token = %q", got)
	}
}

func TestScriptError(t *testing.T) {
	e := New(&fakeBackend{})

	_, err := e.RunScript("bad.js", `no_such_symbol()`)
	var terr *errors.Error
	if !stderrors.As(err, &terr) || terr.Kind != errors.KindScript {
		t.Fatalf("err = %v", err)
	}
}

func TestTimeout(t *testing.T) {
	e := New(&fakeBackend{})
	e.SetTimeout(50 * time.Millisecond)

	start := time.Now()
	_, err := e.RunScript("spin.js", `for (;;) {}`)
	if err == nil {
		t.Fatal("runaway script should be interrupted")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("interrupt took %s", elapsed)
	}

	// The VM stays usable after an interrupt.
	if _, err := e.RunScript("ok.js", `1 + 1`); err != nil {
		t.Errorf("post-timeout run: %v", err)
	}
}
