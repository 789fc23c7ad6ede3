package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

const testNamespace = "gpulab"

func newTestEngine() (*KubeEngine, *fake.Clientset) {
	clientset := fake.NewSimpleClientset()
	return NewKubeEngineWithClientset(clientset, testNamespace, 5*time.Second), clientset
}

func node(name string, ready bool, unschedulable bool) *corev1.Node {
	status := corev1.ConditionFalse
	if ready {
		status = corev1.ConditionTrue
	}
	return &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{
			Name:   name,
			Labels: map[string]string{corev1.LabelHostname: name},
		},
		Spec: corev1.NodeSpec{Unschedulable: unschedulable},
		Status: corev1.NodeStatus{
			Conditions: []corev1.NodeCondition{
				{Type: corev1.NodeReady, Status: status},
			},
		},
	}
}

func samplePlacementSpec() PlacementSpec {
	return PlacementSpec{
		Name:          "job-abc12345",
		Image:         "pytorch/pytorch:latest",
		NodeHostname:  "node-a",
		GPUUUIDs:      []string{"GPU-aaa", "GPU-bbb"},
		CredentialRef: "ssh-key-alice",
		OwnerID:       "alice",
		Mounts: []Mount{
			{Source: "/data/alice", Target: "/workspace", ReadOnly: false},
		},
	}
}

// --------------------- ListNodes ---------------------
func TestListNodes(t *testing.T) {
	eng, clientset := newTestEngine()
	ctx := context.Background()

	for _, n := range []*corev1.Node{
		node("node-a", true, false),
		node("node-b", false, false),
		node("node-c", true, true),
	} {
		_, err := clientset.CoreV1().Nodes().Create(ctx, n, metav1.CreateOptions{})
		assert.NoError(t, err)
	}

	nodes, err := eng.ListNodes(ctx)
	assert.NoError(t, err)
	assert.Len(t, nodes, 3)

	byName := map[string]NodeStatus{}
	for _, n := range nodes {
		byName[n.Hostname] = n
	}
	assert.True(t, byName["node-a"].Online())
	assert.False(t, byName["node-b"].Online())
	assert.False(t, byName["node-c"].Online())
}

// --------------------- Placements ---------------------
func TestCreatePlacement(t *testing.T) {
	eng, clientset := newTestEngine()
	ctx := context.Background()

	handle, err := eng.CreatePlacement(ctx, samplePlacementSpec())
	assert.NoError(t, err)
	assert.Equal(t, "job-abc12345", handle)

	pod, err := clientset.CoreV1().Pods(testNamespace).Get(ctx, handle, metav1.GetOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "node-a", pod.Spec.NodeSelector[corev1.LabelHostname])
	assert.Equal(t, "alice", pod.Labels[LabelOwner])
	assert.Equal(t, "ssh-key-alice", pod.Labels[LabelCredential])
	assert.Equal(t, "GPU-aaa,GPU-bbb", pod.Annotations[AnnotationGPUs])

	container := pod.Spec.Containers[0]
	assert.Equal(t, "pytorch/pytorch:latest", container.Image)
	assert.Equal(t, "NVIDIA_VISIBLE_DEVICES", container.Env[0].Name)
	assert.Equal(t, "GPU-aaa,GPU-bbb", container.Env[0].Value)
	// credential volume plus one host mount
	assert.Len(t, pod.Spec.Volumes, 2)
	assert.Equal(t, "/root/.ssh", container.VolumeMounts[0].MountPath)
	assert.Equal(t, "/workspace", container.VolumeMounts[1].MountPath)

	svc, err := clientset.CoreV1().Services(testNamespace).Get(ctx, "job-abc12345-ssh", metav1.GetOptions{})
	assert.NoError(t, err)
	assert.Equal(t, corev1.ServiceTypeNodePort, svc.Spec.Type)
	assert.Equal(t, "job-abc12345", svc.Spec.Selector[LabelJob])
}

func TestGetPlacement_NotFound(t *testing.T) {
	eng, _ := newTestEngine()

	_, err := eng.GetPlacement(context.Background(), "job-unknown")
	assert.ErrorIs(t, err, ErrPlacementNotFound)
}

func TestGetPlacement_ReportsPhaseAndPorts(t *testing.T) {
	eng, clientset := newTestEngine()
	ctx := context.Background()

	handle, err := eng.CreatePlacement(ctx, samplePlacementSpec())
	assert.NoError(t, err)

	pod, _ := clientset.CoreV1().Pods(testNamespace).Get(ctx, handle, metav1.GetOptions{})
	pod.Status.Phase = corev1.PodRunning
	_, err = clientset.CoreV1().Pods(testNamespace).UpdateStatus(ctx, pod, metav1.UpdateOptions{})
	assert.NoError(t, err)

	svc, _ := clientset.CoreV1().Services(testNamespace).Get(ctx, "job-abc12345-ssh", metav1.GetOptions{})
	svc.Spec.Ports[0].NodePort = 30022
	_, err = clientset.CoreV1().Services(testNamespace).Update(ctx, svc, metav1.UpdateOptions{})
	assert.NoError(t, err)

	status, err := eng.GetPlacement(ctx, handle)
	assert.NoError(t, err)
	assert.Equal(t, "Running", status.Phase)
	assert.Equal(t, []int32{30022}, status.Ports)
}

func TestRemovePlacement_Idempotent(t *testing.T) {
	eng, clientset := newTestEngine()
	ctx := context.Background()

	handle, err := eng.CreatePlacement(ctx, samplePlacementSpec())
	assert.NoError(t, err)

	assert.NoError(t, eng.RemovePlacement(ctx, handle))

	_, err = clientset.CoreV1().Pods(testNamespace).Get(ctx, handle, metav1.GetOptions{})
	assert.Error(t, err)

	// removing an already-gone placement is not an error
	assert.NoError(t, eng.RemovePlacement(ctx, handle))
}

// --------------------- Credentials ---------------------
func TestCredential_RoundTrip(t *testing.T) {
	eng, _ := newTestEngine()
	ctx := context.Background()

	ref, err := eng.StoreCredential(ctx, "ssh-key-alice", "ssh-ed25519 AAAA")
	assert.NoError(t, err)
	assert.Equal(t, "ssh-key-alice", ref)

	blob, err := eng.GetCredential(ctx, ref)
	assert.NoError(t, err)
	assert.Equal(t, "ssh-ed25519 AAAA", blob)

	// storing under the same name overwrites
	_, err = eng.StoreCredential(ctx, "ssh-key-alice", "ssh-ed25519 BBBB")
	assert.NoError(t, err)
	blob, err = eng.GetCredential(ctx, ref)
	assert.NoError(t, err)
	assert.Equal(t, "ssh-ed25519 BBBB", blob)

	assert.NoError(t, eng.RemoveCredential(ctx, ref))
	_, err = eng.GetCredential(ctx, ref)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	assert.NoError(t, eng.RemoveCredential(ctx, ref))
}

func TestCredentialInUse(t *testing.T) {
	eng, clientset := newTestEngine()
	ctx := context.Background()

	inUse, err := eng.CredentialInUse(ctx, "ssh-key-alice")
	assert.NoError(t, err)
	assert.False(t, inUse)

	handle, err := eng.CreatePlacement(ctx, samplePlacementSpec())
	assert.NoError(t, err)

	inUse, err = eng.CredentialInUse(ctx, "ssh-key-alice")
	assert.NoError(t, err)
	assert.True(t, inUse)

	// a finished pod no longer pins the key
	pod, _ := clientset.CoreV1().Pods(testNamespace).Get(ctx, handle, metav1.GetOptions{})
	pod.Status.Phase = corev1.PodSucceeded
	_, err = clientset.CoreV1().Pods(testNamespace).UpdateStatus(ctx, pod, metav1.UpdateOptions{})
	assert.NoError(t, err)

	inUse, err = eng.CredentialInUse(ctx, "ssh-key-alice")
	assert.NoError(t, err)
	assert.False(t, inUse)
}
