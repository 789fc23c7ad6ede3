package engine

import (
	"os"
	"path/filepath"
	"time"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// NewKubeEngine builds the Kubernetes-backed engine. Config resolution:
// KUBECONFIG env, then in-cluster, then ~/.kube/config.
func NewKubeEngine(namespace string, timeout time.Duration) (*KubeEngine, error) {
	var (
		cfg *rest.Config
		err error
	)
	if configPath := os.Getenv("KUBECONFIG"); configPath != "" {
		cfg, err = clientcmd.BuildConfigFromFlags("", configPath)
	} else {
		cfg, err = rest.InClusterConfig()
		if err != nil {
			kubeconfig := filepath.Join(homedir.HomeDir(), ".kube", "config")
			cfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		}
	}
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &KubeEngine{
		clientset: clientset,
		namespace: namespace,
		timeout:   timeout,
	}, nil
}

// NewKubeEngineWithClientset injects a clientset, used by tests with the
// fake client.
func NewKubeEngineWithClientset(clientset kubernetes.Interface, namespace string, timeout time.Duration) *KubeEngine {
	return &KubeEngine{
		clientset: clientset,
		namespace: namespace,
		timeout:   timeout,
	}
}
