package threadpool

import "testing"

func TestSetMaxWorkersOnce(t *testing.T) {
	reset()
	defer reset()

	if err := SetMaxWorkers(4); err != nil {
		t.Fatalf("first SetMaxWorkers failed: %v", err)
	}
	if err := SetMaxWorkers(8); err == nil {
		t.Fatal("second SetMaxWorkers should have failed")
	}
}

func TestSetMaxWorkersRejectedAfterPoolUse(t *testing.T) {
	reset()
	defer reset()

	_ = Pool() // lazily creates the default pool and marks it in use
	if err := SetMaxWorkers(2); err == nil {
		t.Fatal("SetMaxWorkers after Pool() use should have failed")
	}
}

func TestSetMaxWorkersRejectsInvalidSize(t *testing.T) {
	reset()
	defer reset()

	if err := SetMaxWorkers(0); err == nil {
		t.Fatal("SetMaxWorkers(0) should have failed")
	}
}
