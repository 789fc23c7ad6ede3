package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/client-go/kubernetes"
)

const (
	// LabelJob ties the placement pod and its ssh service together.
	LabelJob = "manager.gpulab.io/job"
	// LabelOwner carries the owning user's external id.
	LabelOwner = "manager.gpulab.io/owner"
	// LabelCredential carries the mounted credential ref, so rotation can
	// tell whether a stored key is still referenced by a live placement.
	LabelCredential = "manager.gpulab.io/credential"
	// AnnotationGPUs records the pinned uuid list (uuids are not valid label
	// values once joined).
	AnnotationGPUs = "manager.gpulab.io/gpu-uuids"

	credentialKey = "authorized_keys"
	sshPort       = 22
)

// KubeEngine implements Engine against a Kubernetes cluster. A placement is
// a pod pinned by hostname plus a NodePort service exposing ssh; the handle
// is the pod name. Credentials are ConfigMaps in the same namespace.
type KubeEngine struct {
	clientset kubernetes.Interface
	namespace string
	timeout   time.Duration
}

// scoped bounds every engine call so a slow cluster cannot stall request
// handling.
func (e *KubeEngine) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.timeout)
}

func (e *KubeEngine) ListNodes(ctx context.Context) ([]NodeStatus, error) {
	ctx, cancel := e.scoped(ctx)
	defer cancel()

	list, err := e.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	nodes := make([]NodeStatus, 0, len(list.Items))
	for _, node := range list.Items {
		hostname := node.Labels[corev1.LabelHostname]
		if hostname == "" {
			hostname = node.Name
		}
		ready := false
		for _, cond := range node.Status.Conditions {
			if cond.Type == corev1.NodeReady {
				ready = cond.Status == corev1.ConditionTrue
			}
		}
		nodes = append(nodes, NodeStatus{
			Hostname:    hostname,
			Ready:       ready,
			Schedulable: !node.Spec.Unschedulable,
		})
	}
	return nodes, nil
}

func (e *KubeEngine) CreatePlacement(ctx context.Context, spec PlacementSpec) (string, error) {
	ctx, cancel := e.scoped(ctx)
	defer cancel()

	volumes := []corev1.Volume{
		{
			Name: "credential",
			VolumeSource: corev1.VolumeSource{
				ConfigMap: &corev1.ConfigMapVolumeSource{
					LocalObjectReference: corev1.LocalObjectReference{Name: spec.CredentialRef},
					Items: []corev1.KeyToPath{
						{Key: credentialKey, Path: credentialKey},
					},
				},
			},
		},
	}
	volumeMounts := []corev1.VolumeMount{
		{Name: "credential", MountPath: "/root/.ssh", ReadOnly: true},
	}

	for i, m := range spec.Mounts {
		name := volumeName(i)
		volumes = append(volumes, corev1.Volume{
			Name: name,
			VolumeSource: corev1.VolumeSource{
				HostPath: &corev1.HostPathVolumeSource{Path: m.Source},
			},
		})
		volumeMounts = append(volumeMounts, corev1.VolumeMount{
			Name:      name,
			MountPath: m.Target,
			ReadOnly:  m.ReadOnly,
		})
	}

	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: e.namespace,
			Labels: map[string]string{
				LabelJob:        spec.Name,
				LabelOwner:      spec.OwnerID,
				LabelCredential: spec.CredentialRef,
			},
			Annotations: map[string]string{
				AnnotationGPUs: strings.Join(spec.GPUUUIDs, ","),
			},
		},
		Spec: corev1.PodSpec{
			RestartPolicy: corev1.RestartPolicyNever,
			NodeSelector: map[string]string{
				corev1.LabelHostname: spec.NodeHostname,
			},
			Volumes: volumes,
			Containers: []corev1.Container{
				{
					Name:  "job",
					Image: spec.Image,
					TTY:   true,
					Env: []corev1.EnvVar{
						{Name: "NVIDIA_VISIBLE_DEVICES", Value: strings.Join(spec.GPUUUIDs, ",")},
					},
					Ports: []corev1.ContainerPort{
						{ContainerPort: sshPort},
					},
					VolumeMounts: volumeMounts,
				},
			},
		},
	}

	if _, err := e.clientset.CoreV1().Pods(e.namespace).Create(ctx, pod, metav1.CreateOptions{}); err != nil {
		return "", err
	}

	service := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      serviceName(spec.Name),
			Namespace: e.namespace,
			Labels: map[string]string{
				LabelJob: spec.Name,
			},
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeNodePort,
			Selector: map[string]string{LabelJob: spec.Name},
			Ports: []corev1.ServicePort{
				{
					Port:       sshPort,
					TargetPort: intstr.FromInt(sshPort),
					Protocol:   corev1.ProtocolTCP,
				},
			},
		},
	}

	if _, err := e.clientset.CoreV1().Services(e.namespace).Create(ctx, service, metav1.CreateOptions{}); err != nil {
		// Keep pod and service lifecycle in lockstep: a half-created
		// placement must not leak.
		_ = e.clientset.CoreV1().Pods(e.namespace).Delete(ctx, spec.Name, metav1.DeleteOptions{})
		return "", err
	}

	return spec.Name, nil
}

func (e *KubeEngine) GetPlacement(ctx context.Context, handle string) (PlacementStatus, error) {
	ctx, cancel := e.scoped(ctx)
	defer cancel()

	pod, err := e.clientset.CoreV1().Pods(e.namespace).Get(ctx, handle, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return PlacementStatus{}, ErrPlacementNotFound
		}
		return PlacementStatus{}, err
	}

	status := PlacementStatus{
		Name:  handle,
		Phase: string(pod.Status.Phase),
	}

	svc, err := e.clientset.CoreV1().Services(e.namespace).Get(ctx, serviceName(handle), metav1.GetOptions{})
	if err == nil {
		for _, port := range svc.Spec.Ports {
			if port.NodePort != 0 {
				status.Ports = append(status.Ports, port.NodePort)
			}
		}
	} else if !apierrors.IsNotFound(err) {
		return PlacementStatus{}, err
	}

	return status, nil
}

// RemovePlacement deletes the service and pod. A placement that is already
// gone counts as removed, so teardown retries stay idempotent.
func (e *KubeEngine) RemovePlacement(ctx context.Context, handle string) error {
	ctx, cancel := e.scoped(ctx)
	defer cancel()

	err := e.clientset.CoreV1().Services(e.namespace).Delete(ctx, serviceName(handle), metav1.DeleteOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return err
	}

	err = e.clientset.CoreV1().Pods(e.namespace).Delete(ctx, handle, metav1.DeleteOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return err
	}
	return nil
}

func (e *KubeEngine) StoreCredential(ctx context.Context, name, blob string) (string, error) {
	ctx, cancel := e.scoped(ctx)
	defer cancel()

	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: e.namespace,
		},
		Data: map[string]string{credentialKey: blob},
	}

	_, err := e.clientset.CoreV1().ConfigMaps(e.namespace).Create(ctx, cm, metav1.CreateOptions{})
	if apierrors.IsAlreadyExists(err) {
		_, err = e.clientset.CoreV1().ConfigMaps(e.namespace).Update(ctx, cm, metav1.UpdateOptions{})
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

func (e *KubeEngine) GetCredential(ctx context.Context, ref string) (string, error) {
	ctx, cancel := e.scoped(ctx)
	defer cancel()

	cm, err := e.clientset.CoreV1().ConfigMaps(e.namespace).Get(ctx, ref, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return "", ErrCredentialNotFound
		}
		return "", err
	}
	return cm.Data[credentialKey], nil
}

func (e *KubeEngine) RemoveCredential(ctx context.Context, ref string) error {
	ctx, cancel := e.scoped(ctx)
	defer cancel()

	err := e.clientset.CoreV1().ConfigMaps(e.namespace).Delete(ctx, ref, metav1.DeleteOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return err
	}
	return nil
}

// CredentialInUse reports whether any live placement still mounts ref.
func (e *KubeEngine) CredentialInUse(ctx context.Context, ref string) (bool, error) {
	ctx, cancel := e.scoped(ctx)
	defer cancel()

	pods, err := e.clientset.CoreV1().Pods(e.namespace).List(ctx, metav1.ListOptions{
		LabelSelector: LabelCredential + "=" + ref,
	})
	if err != nil {
		return false, err
	}
	for _, pod := range pods.Items {
		switch pod.Status.Phase {
		case corev1.PodSucceeded, corev1.PodFailed:
		default:
			return true, nil
		}
	}
	return false, nil
}

func serviceName(handle string) string {
	return handle + "-ssh"
}

func volumeName(i int) string {
	return fmt.Sprintf("mount-%d", i)
}
